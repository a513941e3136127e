package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Info is what can be read off a credential without verifying it.
// Synthetic demo credentials are not JWTs, so every field is optional.
type Info struct {
	Subject  string
	Email    string
	IssuedAt time.Time
	Expiry   time.Time
	IsJWT    bool
}

type inspectClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Inspect parses a bearer credential without signature verification and
// extracts its registered claims. Verification belongs to the server; the
// client only surfaces the issuance metadata carried in the token.
func Inspect(credential string) Info {
	claims := &inspectClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(credential, claims); err != nil {
		return Info{}
	}

	info := Info{
		Subject: claims.Subject,
		Email:   claims.Email,
		IsJWT:   true,
	}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.Expiry = claims.ExpiresAt.Time
	}
	return info
}
