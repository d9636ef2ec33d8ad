package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var hotelValidator = validator.New()

// Address is the optional postal address of a hotel. Every field is optional.
type Address struct {
	Street  string `json:"street,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// IsEmpty reports whether no address field is set.
func (a Address) IsEmpty() bool {
	return a.Street == "" && a.ZipCode == "" && a.City == "" && a.Country == ""
}

// Hotel is a hotel profile owned by exactly one account. AuthID is a
// back-reference to the owning account's id.
type Hotel struct {
	ID          string    `json:"id"          validate:"required"`
	Name        string    `json:"name"        validate:"required"`
	Description string    `json:"description" validate:"required"`
	AuthID      string    `json:"authId"      validate:"required"`
	Address     *Address  `json:"address,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewHotel builds a Hotel and validates it. A nil or empty address is stored
// as nil.
func NewHotel(id, name, description, authID string, address *Address) (*Hotel, error) {
	h := &Hotel{
		ID:          id,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		AuthID:      authID,
		CreatedAt:   time.Now().UTC(),
	}
	if address != nil && !address.IsEmpty() {
		a := *address
		h.Address = &a
	}

	if err := hotelValidator.Struct(h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHotelProfile, err)
	}
	return h, nil
}
