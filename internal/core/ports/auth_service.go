package ports

import (
	"context"

	"github.com/hotelhub/account-service/internal/core/domain"
)

// CreateAccountInput carries a registration request.
type CreateAccountInput struct {
	Email           domain.Email
	Password        string
	ConfirmPassword string
}

// LoginInput carries a login request.
type LoginInput struct {
	Email    domain.Email
	Password string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string
	AccountID string
}

// ResetPasswordInput carries a password reset request.
type ResetPasswordInput struct {
	Email           domain.Email
	Password        string
	ConfirmPassword string
}

type AuthService interface {
	CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error)
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
}
