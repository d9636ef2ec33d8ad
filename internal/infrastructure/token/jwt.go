// Package token issues and validates HS256 session tokens with a sliding
// refresh window.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hotelhub/account-service/internal/core/ports"
)

const (
	// DefaultSecret is used when no secret is configured. Never rely on it
	// outside local development.
	DefaultSecret = "dev-secret-change-me"

	DefaultTTL           = 24 * time.Hour
	DefaultRefreshWindow = 5 * time.Minute
)

// Claims is the payload carried by a session token.
type Claims struct {
	AccountID string `json:"accountId"`
	jwt.RegisteredClaims
}

// JWTService implements ports.TokenService.
type JWTService struct {
	secret        []byte
	ttl           time.Duration
	refreshWindow time.Duration
	method        jwt.SigningMethod
	now           func() time.Time
}

// Option customises a JWTService.
type Option func(*JWTService)

// WithClock replaces time.Now, mainly for tests that walk through the
// refresh window.
func WithClock(now func() time.Time) Option {
	return func(s *JWTService) { s.now = now }
}

// NewJWTService builds a token service. Zero durations fall back to the
// defaults and an empty secret falls back to DefaultSecret.
func NewJWTService(secret string, ttl, refreshWindow time.Duration, opts ...Option) *JWTService {
	if secret == "" {
		secret = DefaultSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if refreshWindow <= 0 {
		refreshWindow = DefaultRefreshWindow
	}

	s := &JWTService{
		secret:        []byte(secret),
		ttl:           ttl,
		refreshWindow: refreshWindow,
		method:        jwt.SigningMethodHS256,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *JWTService) GenerateToken(accountID string) string {
	now := s.now()
	claims := Claims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return ""
	}
	return signed
}

// ValidateToken reports whether tokenString is a valid session token and
// whether it is inside the refresh window. A token stops being valid at the
// exact second of its exp claim, so a near-expiry token always has between
// zero and refreshWindow of life left, zero excluded.
func (s *JWTService) ValidateToken(tokenString string) ports.TokenValidation {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !tkn.Valid || claims.AccountID == "" {
		return ports.TokenValidation{}
	}

	remaining := claims.ExpiresAt.Sub(s.now())
	return ports.TokenValidation{
		AccountID:     claims.AccountID,
		IsValid:       true,
		ShouldRefresh: remaining < s.refreshWindow,
	}
}
