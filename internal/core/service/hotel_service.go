package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hotelhub/account-service/internal/core/domain"
	"github.com/hotelhub/account-service/internal/core/ports"
)

type HotelService struct {
	repo   ports.HotelRepository
	ids    ports.IDGenerator
	logger zerolog.Logger
}

func NewHotelService(repo ports.HotelRepository, ids ports.IDGenerator, logger zerolog.Logger) *HotelService {
	return &HotelService{repo: repo, ids: ids, logger: logger}
}

// CreateHotelProfile validates and stores a new hotel profile owned by
// input.AuthID.
func (s *HotelService) CreateHotelProfile(ctx context.Context, input ports.CreateHotelProfileInput) (*domain.Hotel, error) {
	hotel, err := domain.NewHotel(s.ids.Next(), input.Name, input.Description, input.AuthID, input.Address)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, hotel); err != nil {
		s.logger.Error().Err(err).Str("auth_id", input.AuthID).Msg("failed to save hotel profile")
		return nil, fmt.Errorf("create hotel profile: %w", err)
	}

	s.logger.Info().Str("hotel_id", hotel.ID).Str("auth_id", hotel.AuthID).Msg("hotel profile created")
	return hotel, nil
}

// GetHotelProfile returns a hotel owned by authID. A hotel owned by another
// account is reported as not found.
func (s *HotelService) GetHotelProfile(ctx context.Context, id, authID string) (*domain.Hotel, error) {
	hotel, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get hotel profile: %w", err)
	}
	if hotel == nil || hotel.AuthID != authID {
		return nil, domain.ErrHotelNotFound
	}
	return hotel, nil
}
