package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelhub/account-service/internal/core/ports"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClockedService(secret string) (*JWTService, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return NewJWTService(secret, 0, 0, WithClock(clock.Now)), clock
}

func TestJWTService_Defaults(t *testing.T) {
	s := NewJWTService("", 0, 0)

	assert.Equal(t, []byte(DefaultSecret), s.secret)
	assert.Equal(t, 24*time.Hour, s.ttl)
	assert.Equal(t, 5*time.Minute, s.refreshWindow)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	s, _ := newClockedService("secret")

	tok := s.GenerateToken("acc-1")
	require.NotEmpty(t, tok)

	v := s.ValidateToken(tok)
	assert.Equal(t, ports.TokenValidation{AccountID: "acc-1", IsValid: true, ShouldRefresh: false}, v)
	assert.Equal(t, ports.TokenFresh, v.State())
}

func TestJWTService_ClaimsShape(t *testing.T) {
	s, clock := newClockedService("secret")

	tok := s.GenerateToken("acc-1")

	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)

	assert.Equal(t, "acc-1", claims["accountId"])
	assert.EqualValues(t, clock.Now().Unix(), claims["iat"])
	assert.EqualValues(t, clock.Now().Add(24*time.Hour).Unix(), claims["exp"])
}

func TestJWTService_RefreshWindow(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    ports.TokenValidation
		state   ports.TokenState
	}{
		{"fresh after one hour", time.Hour, ports.TokenValidation{AccountID: "acc-1", IsValid: true}, ports.TokenFresh},
		{"just outside window", 24*time.Hour - 6*time.Minute, ports.TokenValidation{AccountID: "acc-1", IsValid: true}, ports.TokenFresh},
		{"inside window", 24*time.Hour - 4*time.Minute, ports.TokenValidation{AccountID: "acc-1", IsValid: true, ShouldRefresh: true}, ports.TokenNearExpiry},
		{"one second before expiry", 24*time.Hour - time.Second, ports.TokenValidation{AccountID: "acc-1", IsValid: true, ShouldRefresh: true}, ports.TokenNearExpiry},
		{"at expiry", 24 * time.Hour, ports.TokenValidation{}, ports.TokenExpired},
		{"expired", 24*time.Hour + time.Second, ports.TokenValidation{}, ports.TokenExpired},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, clock := newClockedService("secret")
			tok := s.GenerateToken("acc-1")

			clock.Advance(tc.elapsed)
			v := s.ValidateToken(tok)

			assert.Equal(t, tc.want, v)
			assert.Equal(t, tc.state, v.State())
		})
	}
}

func TestJWTService_RejectsTampering(t *testing.T) {
	s, _ := newClockedService("secret")
	tok := s.GenerateToken("acc-1")

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	assert.Equal(t, ports.TokenValidation{}, s.ValidateToken(tampered))
}

func TestJWTService_RejectsOtherSecret(t *testing.T) {
	issuer, _ := newClockedService("secret-a")
	verifier, _ := newClockedService("secret-b")

	assert.False(t, verifier.ValidateToken(issuer.GenerateToken("acc-1")).IsValid)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	s, _ := newClockedService("secret")

	for _, in := range []string{"", "not-a-token", "a.b.c"} {
		assert.Equal(t, ports.TokenValidation{}, s.ValidateToken(in), "input %q", in)
	}
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	s, clock := newClockedService("secret")
	claims := Claims{
		AccountID: "acc-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Hour)),
		},
	}

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	assert.False(t, s.ValidateToken(none).IsValid)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	assert.False(t, s.ValidateToken(hs512).IsValid)
}

func TestJWTService_RequiresExpiryAndAccount(t *testing.T) {
	s, clock := newClockedService("secret")

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{AccountID: "acc-1"}).SignedString([]byte("secret"))
	require.NoError(t, err)
	assert.False(t, s.ValidateToken(noExp).IsValid)

	noAccount, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Hour))},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	assert.False(t, s.ValidateToken(noAccount).IsValid)
}

func TestJWTService_SigningFailureReturnsEmpty(t *testing.T) {
	s, _ := newClockedService("secret")
	s.method = jwt.SigningMethodRS256

	assert.Empty(t, s.GenerateToken("acc-1"))
}
