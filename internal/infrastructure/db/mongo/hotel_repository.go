package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hotelhub/account-service/internal/core/domain"
)

const collectionHotels = "hotels"

type HotelRepository struct {
	col *mongo.Collection
	log zerolog.Logger
}

func NewHotelRepository(db *mongo.Database, log zerolog.Logger) *HotelRepository {
	return &HotelRepository{
		col: db.Collection(collectionHotels),
		log: log.With().Str("collection", collectionHotels).Logger(),
	}
}

type addressDoc struct {
	Street  string `bson:"street,omitempty"`
	ZipCode string `bson:"zip_code,omitempty"`
	City    string `bson:"city,omitempty"`
	Country string `bson:"country,omitempty"`
}

type hotelDoc struct {
	ID          string      `bson:"_id"`
	Name        string      `bson:"name"`
	Description string      `bson:"description"`
	AuthID      string      `bson:"auth_id"`
	Address     *addressDoc `bson:"address,omitempty"`
	CreatedAt   time.Time   `bson:"created_at"`
}

func toHotelDoc(h *domain.Hotel) hotelDoc {
	doc := hotelDoc{
		ID:          h.ID,
		Name:        h.Name,
		Description: h.Description,
		AuthID:      h.AuthID,
		CreatedAt:   h.CreatedAt,
	}
	if h.Address != nil {
		doc.Address = &addressDoc{
			Street:  h.Address.Street,
			ZipCode: h.Address.ZipCode,
			City:    h.Address.City,
			Country: h.Address.Country,
		}
	}
	return doc
}

func (d hotelDoc) toDomain() *domain.Hotel {
	h := &domain.Hotel{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		AuthID:      d.AuthID,
		CreatedAt:   d.CreatedAt.UTC(),
	}
	if d.Address != nil {
		h.Address = &domain.Address{
			Street:  d.Address.Street,
			ZipCode: d.Address.ZipCode,
			City:    d.Address.City,
			Country: d.Address.Country,
		}
	}
	return h
}

func (r *HotelRepository) Save(ctx context.Context, h *domain.Hotel) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toHotelDoc(h)); err != nil {
		return fmt.Errorf("insert hotel: %w", err)
	}
	return nil
}

// GetByID returns nil when the hotel does not exist or the lookup failed.
func (r *HotelRepository) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc hotelDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			r.log.Warn().Err(err).Str("hotel_id", id).Msg("find hotel failed")
		}
		return nil, nil
	}
	return doc.toDomain(), nil
}

func (r *HotelRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "auth_id", Value: 1}},
		Options: options.Index().SetName("auth_id"),
	})
	if err != nil {
		return fmt.Errorf("create hotels indexes: %w", err)
	}
	return nil
}
