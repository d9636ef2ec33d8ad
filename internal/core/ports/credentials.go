package ports

// PasswordHasher owns the password policy and the hashing scheme.
type PasswordHasher interface {
	Validate(password string) bool
	Hash(password string) (string, error)
	Compare(password, hash string) bool
}

// IDGenerator produces unique opaque identifiers for new entities.
type IDGenerator interface {
	Next() string
}
