package ports

import (
	"context"

	"github.com/hotelhub/account-service/internal/core/domain"
)

// HotelRepository defines persistence operations for hotel profiles.
type HotelRepository interface {
	Save(ctx context.Context, hotel *domain.Hotel) error
	// GetByID returns the hotel with the given id, or nil when there is none.
	GetByID(ctx context.Context, id string) (*domain.Hotel, error)
}
