package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hotelhub/account-service/internal/core/domain"
	"github.com/hotelhub/account-service/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	accounts  []*domain.Account
	findErr   error
	saveErr   error
	updateErr error
	saves     int
	updates   int
}

func newStubAccountRepo(seed ...*domain.Account) *stubAccountRepo {
	r := &stubAccountRepo{}
	for _, a := range seed {
		r.accounts = append(r.accounts, cloneAccount(a))
	}
	return r
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email domain.Email) (*domain.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, a := range r.accounts {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, nil
}

// Save mirrors the unique email index of the real store.
func (r *stubAccountRepo) Save(_ context.Context, account *domain.Account) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	for _, a := range r.accounts {
		if a.Email == account.Email {
			return domain.ErrAccountAlreadyExists
		}
	}
	r.accounts = append(r.accounts, cloneAccount(account))
	return nil
}

func (r *stubAccountRepo) Update(_ context.Context, id string, update domain.AccountUpdate) error {
	r.updates++
	if r.updateErr != nil {
		return r.updateErr
	}
	for _, a := range r.accounts {
		if a.ID == id && update.PasswordHash != nil {
			a.PasswordHash = *update.PasswordHash
		}
	}
	return nil
}

func (r *stubAccountRepo) GetAll(_ context.Context) ([]*domain.Account, error) {
	out := make([]*domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, cloneAccount(a))
	}
	return out, nil
}

// stubHasher reports every password as valid unless valid is false, and
// hashes to a fixed value when fixedHash is set.
type stubHasher struct {
	valid     bool
	fixedHash string
	hashErr   error
}

func (h *stubHasher) Validate(string) bool { return h.valid }

func (h *stubHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	if h.fixedHash != "" {
		return h.fixedHash, nil
	}
	return "hashed-" + password, nil
}

func (h *stubHasher) Compare(password, hash string) bool {
	if h.fixedHash != "" {
		return hash == h.fixedHash
	}
	return hash == "hashed-"+password
}

type stubIDs struct{ id string }

func (g stubIDs) Next() string { return g.id }

type stubTokens struct {
	token  string
	issued []string
}

func (s *stubTokens) GenerateToken(accountID string) string {
	s.issued = append(s.issued, accountID)
	return s.token
}

func (s *stubTokens) ValidateToken(token string) ports.TokenValidation {
	if token == s.token && len(s.issued) > 0 {
		return ports.TokenValidation{AccountID: s.issued[len(s.issued)-1], IsValid: true}
	}
	return ports.TokenValidation{}
}

type stubHotelRepo struct {
	byID    map[string]*domain.Hotel
	saveErr error
	getErr  error
}

func newStubHotelRepo() *stubHotelRepo {
	return &stubHotelRepo{byID: make(map[string]*domain.Hotel)}
}

func (r *stubHotelRepo) Save(_ context.Context, h *domain.Hotel) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	clone := *h
	r.byID[h.ID] = &clone
	return nil
}

func (r *stubHotelRepo) GetByID(_ context.Context, id string) (*domain.Hotel, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	h, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *h
	return &clone, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var (
	discardLogger = zerolog.Nop()
	errStore      = errors.New("store unavailable")
)

func mustEmail(raw string) domain.Email {
	e, err := domain.NewEmail(raw)
	if err != nil {
		panic(err)
	}
	return e
}

func accountFor(email, hash string) *domain.Account {
	return &domain.Account{ID: "acc-" + strings.Split(email, "@")[0], Email: mustEmail(email), PasswordHash: hash}
}
