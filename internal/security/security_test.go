package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("909090")
	require.NoError(t, err)

	assert.NotEqual(t, "909090", hash)
	assert.True(t, CheckPassword(hash, "909090"))
	assert.False(t, CheckPassword(hash, "909091"))
	assert.False(t, CheckPassword(hash, ""))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestHashPasswordSaltsEachCall(t *testing.T) {
	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestTokenIssueAndParse(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("1b7e", "Paulo", "paulo@mail.com")
	require.NoError(t, err)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "1b7e", claims.ID)
	assert.Equal(t, "Paulo", claims.Name)
	assert.Equal(t, "paulo@mail.com", claims.Email)
}

func TestTokenParseRejectsWrongSecretAndExpiry(t *testing.T) {
	token, err := NewTokenService("secret", time.Hour).Issue("id", "n", "e")
	require.NoError(t, err)

	_, err = NewTokenService("other", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := NewTokenService("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.Issue("id", "n", "e")
	require.NoError(t, err)

	_, err = expired.Parse(old)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenParseRejectsOtherAlgorithms(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{ID: "id"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService("secret", time.Hour).Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
