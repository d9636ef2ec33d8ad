// Package security holds the password policy and the hashing schemes behind
// ports.PasswordHasher.
package security

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hotelhub/account-service/internal/core/ports"
)

const (
	MinPasswordLength = 8
	specialChars      = `!@#$%^&*(),.?":{}|<>`
)

const (
	SchemeBcrypt   = "bcrypt"
	SchemeArgon2id = "argon2id"
)

// ValidatePassword reports whether password satisfies the policy: at least
// MinPasswordLength characters with a lowercase letter, an uppercase letter,
// a digit and one of specialChars.
func ValidatePassword(password string) bool {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return false
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(specialChars, r):
			special = true
		}
	}
	return lower && upper && digit && special
}

// NewHasher returns the hasher for scheme. bcryptCost is ignored by argon2id.
func NewHasher(scheme string, bcryptCost int) (ports.PasswordHasher, error) {
	switch strings.ToLower(scheme) {
	case "", SchemeBcrypt:
		return NewBcryptHasher(bcryptCost), nil
	case SchemeArgon2id:
		return NewArgon2idHasher(), nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", scheme)
	}
}
