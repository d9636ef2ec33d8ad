package domain

import "errors"

// Account errors.
var (
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrInvalidPassword      = errors.New("invalid password")
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrBadCredentials       = errors.New("invalid credentials")
	ErrTokenGeneration      = errors.New("token generation failed")
)

// Hotel profile errors.
var (
	ErrInvalidHotelProfile = errors.New("invalid hotel profile")
	ErrHotelNotFound       = errors.New("hotel not found")
)
