// internal/session/fallback.go
package session

import (
	"strings"

	"petbloom/internal/domain/auth"

	"github.com/oklog/ulid/v2"
)

// Source distinguishes identities returned by the backend from ones
// synthesized locally under the demo policy.
type Source int

const (
	SourceBackend Source = iota
	SourceSynthetic
)

// outcome is the explicit two-branch result of an identity-producing
// operation. The demo fallback is a visible branch here, not a side
// effect of error handling.
type outcome struct {
	identity *auth.Identity
	source   Source
}

func backendOutcome(identity *auth.Identity) outcome {
	return outcome{identity: identity, source: SourceBackend}
}

// syntheticLogin fabricates the demo identity adopted when backend login
// is unavailable: the email is echoed back and the display name is the
// email's local part.
func syntheticLogin(email string) outcome {
	return outcome{
		identity: &auth.Identity{
			ID:          "demo-user",
			Email:       email,
			FullName:    localPart(email),
			AccessToken: syntheticToken(),
		},
		source: SourceSynthetic,
	}
}

// syntheticRegistration carries the caller-supplied profile instead of
// derived values.
func syntheticRegistration(email, fullName, phone string) outcome {
	return outcome{
		identity: &auth.Identity{
			ID:          "demo-user",
			Email:       email,
			FullName:    fullName,
			Phone:       phone,
			AccessToken: syntheticToken(),
		},
		source: SourceSynthetic,
	}
}

// syntheticGoogle models the stubbed federated login: fixed placeholder
// identity, no backend call attempted.
func syntheticGoogle() outcome {
	return outcome{
		identity: &auth.Identity{
			ID:          "demo-google-user",
			Email:       "demo@example.com",
			FullName:    "Demo User",
			AccessToken: syntheticToken(),
		},
		source: SourceSynthetic,
	}
}

// syntheticToken mints a unique demo credential. The ULID carries the
// issuance timestamp the way the original's Date.now() suffix did.
func syntheticToken() string {
	return "demo-token-" + ulid.Make().String()
}

func localPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
