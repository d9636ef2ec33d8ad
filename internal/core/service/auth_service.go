package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelhub/account-service/internal/core/domain"
	"github.com/hotelhub/account-service/internal/core/ports"
)

// AuthService implements registration, login and password reset.
type AuthService struct {
	accounts ports.AccountRepository
	hasher   ports.PasswordHasher
	ids      ports.IDGenerator
	tokens   ports.TokenService
	log      zerolog.Logger
}

func NewAuthService(
	accounts ports.AccountRepository,
	hasher ports.PasswordHasher,
	ids ports.IDGenerator,
	tokens ports.TokenService,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		accounts: accounts,
		hasher:   hasher,
		ids:      ids,
		tokens:   tokens,
		log:      log,
	}
}

// CreateAccount registers a new account. Nothing is persisted unless every
// check passes.
func (s *AuthService) CreateAccount(ctx context.Context, in ports.CreateAccountInput) (*domain.Account, error) {
	existing, err := s.accounts.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrAccountAlreadyExists
	}

	if !s.hasher.Validate(in.Password) {
		return nil, domain.ErrInvalidPassword
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("create account: hash password: %w", err)
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:           s.ids.Next(),
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.accounts.Save(ctx, account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.Info().Str("account_id", account.ID).Msg("account created")
	return account, nil
}

// Login checks the credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	account, err := s.accounts.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}

	if !s.hasher.Compare(in.Password, account.PasswordHash) {
		return nil, domain.ErrBadCredentials
	}

	token := s.tokens.GenerateToken(account.ID)
	if token == "" {
		s.log.Error().Str("account_id", account.ID).Msg("token signing failed")
		return nil, domain.ErrTokenGeneration
	}

	return &ports.LoginResult{Token: token, AccountID: account.ID}, nil
}

// ResetPassword replaces the password hash of the account registered with
// the given email.
func (s *AuthService) ResetPassword(ctx context.Context, in ports.ResetPasswordInput) error {
	if !s.hasher.Validate(in.Password) {
		return domain.ErrInvalidPassword
	}

	account, err := s.accounts.FindByEmail(ctx, in.Email)
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	if account == nil {
		return domain.ErrAccountNotFound
	}

	if in.Password != in.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return fmt.Errorf("reset password: hash password: %w", err)
	}

	if err := s.accounts.Update(ctx, account.ID, domain.AccountUpdate{PasswordHash: &hash}); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	s.log.Info().Str("account_id", account.ID).Msg("password reset")
	return nil
}
