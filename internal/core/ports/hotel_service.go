package ports

import (
	"context"

	"github.com/hotelhub/account-service/internal/core/domain"
)

// CreateHotelProfileInput carries everything needed to create a hotel profile.
// AuthID is the id of the authenticated account.
type CreateHotelProfileInput struct {
	Name        string
	Description string
	Address     *domain.Address
	AuthID      string
}

// HotelService defines use-case operations for hotel profiles.
type HotelService interface {
	CreateHotelProfile(ctx context.Context, input CreateHotelProfileInput) (*domain.Hotel, error)
	// GetHotelProfile returns the hotel only when it is owned by authID.
	GetHotelProfile(ctx context.Context, id, authID string) (*domain.Hotel, error)
}
