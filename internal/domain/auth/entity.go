// internal/domain/auth/entity.go
package auth

import "time"

// Identity represents the signed-in principal held client-side. It is
// either fully absent (anonymous) or fully present with a non-empty
// access token.
type Identity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	Phone       string `json:"phone,omitempty"`
	AccessToken string `json:"access_token"`

	// IssuedAt is derived from the access token when it is a JWT; zero
	// for synthetic demo credentials.
	IssuedAt time.Time `json:"-"`
}

// Valid reports whether the identity can authorize requests.
func (i *Identity) Valid() bool {
	return i != nil && i.AccessToken != ""
}
