package domain

import (
	"errors"
	"testing"
)

func TestNewHotel_Valid(t *testing.T) {
	h, err := NewHotel("h1", "  Grand  ", "Sea view", "acc-1", &Address{City: "Nice", Country: "FR"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Name != "Grand" {
		t.Errorf("expected trimmed name, got %q", h.Name)
	}
	if h.Address == nil || h.Address.City != "Nice" {
		t.Errorf("expected address to be kept, got %+v", h.Address)
	}
	if h.CreatedAt.IsZero() {
		t.Error("CreatedAt must be set")
	}
}

func TestNewHotel_EmptyAddressDropped(t *testing.T) {
	h, err := NewHotel("h1", "Grand", "Sea view", "acc-1", &Address{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Address != nil {
		t.Errorf("expected nil address, got %+v", h.Address)
	}
}

func TestNewHotel_AddressIsCopied(t *testing.T) {
	addr := &Address{Street: "1 Rue"}
	h, _ := NewHotel("h1", "Grand", "Sea view", "acc-1", addr)
	addr.Street = "changed"
	if h.Address.Street != "1 Rue" {
		t.Errorf("hotel address must not alias the caller's value")
	}
}

func TestNewHotel_Invalid(t *testing.T) {
	cases := []struct {
		name                         string
		id, hname, description, auth string
	}{
		{"missing id", "", "Grand", "desc", "acc"},
		{"missing name", "h1", "", "desc", "acc"},
		{"blank name", "h1", "   ", "desc", "acc"},
		{"missing description", "h1", "Grand", "", "acc"},
		{"missing owner", "h1", "Grand", "desc", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewHotel(tc.id, tc.hname, tc.description, tc.auth, nil)
			if !errors.Is(err, ErrInvalidHotelProfile) {
				t.Fatalf("expected ErrInvalidHotelProfile, got %v", err)
			}
		})
	}
}
