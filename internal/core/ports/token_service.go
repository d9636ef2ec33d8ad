package ports

// TokenState is the lifecycle position of a session token at validation time.
type TokenState int

const (
	TokenFresh TokenState = iota
	TokenNearExpiry
	TokenExpired
)

func (s TokenState) String() string {
	switch s {
	case TokenFresh:
		return "fresh"
	case TokenNearExpiry:
		return "near_expiry"
	default:
		return "expired"
	}
}

// TokenValidation is the outcome of validating a session token.
type TokenValidation struct {
	AccountID     string
	IsValid       bool
	ShouldRefresh bool
}

// State derives the lifecycle state. Any token that failed validation,
// including a tampered one, reports TokenExpired.
func (v TokenValidation) State() TokenState {
	switch {
	case !v.IsValid:
		return TokenExpired
	case v.ShouldRefresh:
		return TokenNearExpiry
	default:
		return TokenFresh
	}
}

// TokenService issues and validates stateless session tokens.
type TokenService interface {
	// GenerateToken returns a signed token for accountID, or "" when signing
	// failed.
	GenerateToken(accountID string) string
	ValidateToken(token string) TokenValidation
}
