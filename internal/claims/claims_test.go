package claims

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func TestExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	})

	got := Expiry(token)

	assert.True(t, exp.Equal(got), "want %s, got %s", exp, got)
}

func TestExpiry_NoExpClaim(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "user-1"})

	assert.True(t, Expiry(token).IsZero())
}

func TestExpiry_NotAJWT(t *testing.T) {
	assert.True(t, Expiry("opaque-console-token").IsZero())
	assert.True(t, Expiry("").IsZero())
}

func TestExpiry_IgnoresSignature(t *testing.T) {
	// Expiry is bookkeeping, not validation: a token signed with an unknown
	// key still yields its exp claim.
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"exp": exp.Unix()})
	tampered := token[:len(token)-2] + "xx"

	got := Expiry(tampered)

	assert.True(t, exp.Equal(got))
}

func TestSubject(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "user-1"})

	assert.Equal(t, "user-1", Subject(token))
	assert.Empty(t, Subject("opaque-console-token"))
}
