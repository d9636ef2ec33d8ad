package domain

import (
	"regexp"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is a validated e-mail address. The only way to obtain a non-zero
// Email is through NewEmail.
type Email struct {
	value string
}

// NewEmail validates raw and returns it as an Email, or ErrInvalidEmail.
func NewEmail(raw string) (Email, error) {
	if !emailPattern.MatchString(raw) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: raw}, nil
}

func (e Email) String() string {
	return e.value
}

// IsZero reports whether e was never produced by NewEmail.
func (e Email) IsZero() bool {
	return e.value == ""
}

func (e Email) MarshalText() ([]byte, error) {
	return []byte(e.value), nil
}

// Account is a registered user identified by email and password hash.
type Account struct {
	ID           string    `json:"id"`
	Email        Email     `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AccountUpdate lists the account fields a store update may change.
// Nil fields are left untouched.
type AccountUpdate struct {
	PasswordHash *string
}
