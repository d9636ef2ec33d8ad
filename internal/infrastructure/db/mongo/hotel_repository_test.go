package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/hotelhub/account-service/internal/core/domain"
)

const hotelsNS = "test.hotels"

func TestHotelRepository_Save(t *testing.T) {
	mt := mtest.New(t, mockOpts())
	hotel := &domain.Hotel{
		ID: "h-1", Name: "Port", Description: "Sea view", AuthID: "acc-1",
		Address: &domain.Address{City: "Nice"},
	}

	mt.Run("success", func(mt *mtest.T) {
		repo := NewHotelRepository(mt.DB, zerolog.Nop())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, repo.Save(context.Background(), hotel))
	})

	mt.Run("error propagates", func(mt *mtest.T) {
		repo := NewHotelRepository(mt.DB, zerolog.Nop())
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "boom"}))

		assert.Error(mt, repo.Save(context.Background(), hotel))
	})
}

func TestHotelRepository_GetByID(t *testing.T) {
	mt := mtest.New(t, mockOpts())
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mt.Run("found with address", func(mt *mtest.T) {
		repo := NewHotelRepository(mt.DB, zerolog.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, hotelsNS, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "h-1"},
			{Key: "name", Value: "Port"},
			{Key: "description", Value: "Sea view"},
			{Key: "auth_id", Value: "acc-1"},
			{Key: "address", Value: bson.D{{Key: "city", Value: "Nice"}, {Key: "country", Value: "FR"}}},
			{Key: "created_at", Value: created},
		}))

		h, err := repo.GetByID(context.Background(), "h-1")
		require.NoError(mt, err)
		require.NotNil(mt, h)
		assert.Equal(mt, "acc-1", h.AuthID)
		require.NotNil(mt, h.Address)
		assert.Equal(mt, domain.Address{City: "Nice", Country: "FR"}, *h.Address)
	})

	mt.Run("found without address", func(mt *mtest.T) {
		repo := NewHotelRepository(mt.DB, zerolog.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, hotelsNS, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "h-2"},
			{Key: "name", Value: "Inn"},
			{Key: "description", Value: "Quiet"},
			{Key: "auth_id", Value: "acc-1"},
		}))

		h, err := repo.GetByID(context.Background(), "h-2")
		require.NoError(mt, err)
		require.NotNil(mt, h)
		assert.Nil(mt, h.Address)
	})

	mt.Run("missing", func(mt *mtest.T) {
		repo := NewHotelRepository(mt.DB, zerolog.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, hotelsNS, mtest.FirstBatch))

		h, err := repo.GetByID(context.Background(), "nope")
		require.NoError(mt, err)
		assert.Nil(mt, h)
	})

	mt.Run("store error degrades to absent", func(mt *mtest.T) {
		repo := NewHotelRepository(mt.DB, zerolog.Nop())
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 1, Message: "boom"}))

		h, err := repo.GetByID(context.Background(), "h-1")
		require.NoError(mt, err)
		assert.Nil(mt, h)
	})
}
