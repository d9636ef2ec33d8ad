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

const collectionAccounts = "accounts"

// AccountRepository stores accounts in MongoDB. Lookups never fail: a store
// error is logged and reported as "no account". Writes return their errors.
type AccountRepository struct {
	col *mongo.Collection
	log zerolog.Logger
}

func NewAccountRepository(db *mongo.Database, log zerolog.Logger) *AccountRepository {
	return &AccountRepository{
		col: db.Collection(collectionAccounts),
		log: log.With().Str("collection", collectionAccounts).Logger(),
	}
}

type accountDoc struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func (d accountDoc) toDomain() (*domain.Account, error) {
	email, err := domain.NewEmail(d.Email)
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", d.ID, err)
	}
	return &domain.Account{
		ID:           d.ID,
		Email:        email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email domain.Email) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc accountDoc
	err := r.col.FindOne(ctx, bson.M{"email": email.String()}).Decode(&doc)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			r.log.Warn().Err(err).Msg("find account by email failed")
		}
		return nil, nil
	}

	account, err := doc.toDomain()
	if err != nil {
		r.log.Warn().Err(err).Msg("skipping malformed account")
		return nil, nil
	}
	return account, nil
}

func (r *AccountRepository) Save(ctx context.Context, a *domain.Account) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, accountDoc{
		ID:           a.ID,
		Email:        a.Email.String(),
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAccountAlreadyExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// Update applies the non-nil fields of update to the account with the given id.
func (r *AccountRepository) Update(ctx context.Context, id string, update domain.AccountUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.PasswordHash != nil {
		set["password_hash"] = *update.PasswordHash
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) GetAll(ctx context.Context) ([]*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	accounts := make([]*domain.Account, 0)

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		r.log.Warn().Err(err).Msg("list accounts failed")
		return accounts, nil
	}
	defer cursor.Close(ctx)

	var docs []accountDoc
	if err := cursor.All(ctx, &docs); err != nil {
		r.log.Warn().Err(err).Msg("decode accounts failed")
		return accounts, nil
	}

	for _, d := range docs {
		a, err := d.toDomain()
		if err != nil {
			r.log.Warn().Err(err).Msg("skipping malformed account")
			continue
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

// EnsureIndexes creates the unique email index.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("create accounts indexes: %w", err)
	}
	return nil
}
