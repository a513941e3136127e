package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectReadsRegisteredClaims(t *testing.T) {
	issued := time.Now().Truncate(time.Second)
	expires := issued.Add(time.Hour)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "u-1",
		"email": "pat@example.com",
		"iat":   issued.Unix(),
		"exp":   expires.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	info := Inspect(signed)
	assert.True(t, info.IsJWT)
	assert.Equal(t, "u-1", info.Subject)
	assert.Equal(t, "pat@example.com", info.Email)
	assert.True(t, info.IssuedAt.Equal(issued))
	assert.True(t, info.Expiry.Equal(expires))
}

func TestInspectDemoTokenIsNotJWT(t *testing.T) {
	info := Inspect("demo-token-01J8X6M4T0000000000000000")
	assert.False(t, info.IsJWT)
	assert.Empty(t, info.Subject)
	assert.True(t, info.IssuedAt.IsZero())
}

func TestInspectEmptyCredential(t *testing.T) {
	assert.Equal(t, Info{}, Inspect(""))
}
