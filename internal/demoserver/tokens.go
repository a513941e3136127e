// internal/demoserver/tokens.go
package demoserver

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenManager mints and verifies the HS256 access tokens the demo
// backend hands out. The claim layout matches what the client's
// credential introspection expects: sub, email, iat, exp.
type tokenManager struct {
	secret []byte
	ttl    time.Duration
}

type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func newTokenManager(secret string, ttl time.Duration) *tokenManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &tokenManager{secret: []byte(secret), ttl: ttl}
}

// Mint creates an access token for the given user.
func (m *tokenManager) Mint(userID, email string) (string, error) {
	now := time.Now()
	claims := &accessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "petbloom-demo",
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates an access token, returning its claims.
func (m *tokenManager) Verify(tokenString string) (*accessClaims, error) {
	claims := &accessClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !tok.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
