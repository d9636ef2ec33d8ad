package handler

import (
	"time"

	"github.com/hotelhub/account-service/internal/core/domain"
	"github.com/hotelhub/account-service/internal/core/ports"
)

// --- Request / Response types ---

type addressPayload struct {
	Street  string `json:"street,omitempty"  validate:"max=200"`
	ZipCode string `json:"zipCode,omitempty" validate:"max=20"`
	City    string `json:"city,omitempty"    validate:"max=100"`
	Country string `json:"country,omitempty" validate:"max=100"`
}

// createHotelRequest carries no owner: the owner is the authenticated account.
type createHotelRequest struct {
	Name        string          `json:"name"        validate:"required,max=200"`
	Description string          `json:"description" validate:"required,max=2000"`
	Address     *addressPayload `json:"address,omitempty"`
}

type hotelResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	AuthID      string          `json:"authId"`
	Address     *addressPayload `json:"address,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// --- Request → Service input ---

func toCreateHotelInput(req createHotelRequest, authID string) ports.CreateHotelProfileInput {
	in := ports.CreateHotelProfileInput{
		Name:        req.Name,
		Description: req.Description,
		AuthID:      authID,
	}
	if req.Address != nil {
		in.Address = &domain.Address{
			Street:  req.Address.Street,
			ZipCode: req.Address.ZipCode,
			City:    req.Address.City,
			Country: req.Address.Country,
		}
	}
	return in
}

// --- Domain → HTTP response ---

func toHotelResponse(h *domain.Hotel) hotelResponse {
	resp := hotelResponse{
		ID:          h.ID,
		Name:        h.Name,
		Description: h.Description,
		AuthID:      h.AuthID,
		CreatedAt:   h.CreatedAt.UTC(),
	}
	if h.Address != nil {
		resp.Address = &addressPayload{
			Street:  h.Address.Street,
			ZipCode: h.Address.ZipCode,
			City:    h.Address.City,
			Country: h.Address.Country,
		}
	}
	return resp
}
