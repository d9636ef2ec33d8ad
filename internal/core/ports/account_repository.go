package ports

import (
	"context"

	"github.com/hotelhub/account-service/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	// FindByEmail returns the account registered with email, or nil when
	// there is none.
	FindByEmail(ctx context.Context, email domain.Email) (*domain.Account, error)
	// Save inserts a new account. A second account with the same email is
	// rejected with domain.ErrAccountAlreadyExists.
	Save(ctx context.Context, account *domain.Account) error
	Update(ctx context.Context, id string, update domain.AccountUpdate) error
	GetAll(ctx context.Context) ([]*domain.Account, error)
}
