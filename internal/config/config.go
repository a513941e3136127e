package config

import (
	"os"
	"strings"
	"time"

	xerrors "petbloom/internal/pkg/errors"
)

// Mode selects the session fallback policy.
type Mode string

const (
	// ModeDemo preserves the storefront's always-succeeds policy: backend
	// failures on login/register synthesize a local identity.
	ModeDemo Mode = "demo"
	// ModeStrict disables synthesis and hard-fails on missing configuration.
	ModeStrict Mode = "strict"
)

// DefaultBaseURL is the hardcoded local fallback used when no usable
// endpoint override is configured.
const DefaultBaseURL = "http://localhost:8000/api/v1"

type AppConfig struct {
	// Client
	APIBaseURL     string
	Mode           Mode
	RequestTimeout time.Duration
	CredentialPath string

	// Demo server
	HTTPAddr  string
	JWTSecret string
	JWTTTL    time.Duration
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	mode := ModeDemo
	if strings.EqualFold(getEnv("PETBLOOM_MODE", "demo"), string(ModeStrict)) {
		mode = ModeStrict
	}

	return AppConfig{
		APIBaseURL:     os.Getenv("PETBLOOM_API_URL"),
		Mode:           mode,
		RequestTimeout: getEnvDuration("PETBLOOM_REQUEST_TIMEOUT", 15*time.Second),
		CredentialPath: os.Getenv("PETBLOOM_CREDENTIAL_PATH"),

		HTTPAddr:  getEnv("HTTP_ADDR", ":8000"),
		JWTSecret: getEnv("JWT_SECRET", "petbloom-demo-secret"),
		JWTTTL:    getEnvDuration("JWT_TTL", 24*time.Hour),
	}
}

// ResolveBaseURL applies the endpoint fallback policy. An absent or
// localhost-referencing override resolves to DefaultBaseURL in demo mode;
// strict mode refuses to guess and requires an explicit non-local value.
func (c AppConfig) ResolveBaseURL() (string, error) {
	url := strings.TrimSpace(c.APIBaseURL)
	if url == "" || strings.Contains(url, "localhost") {
		if c.Mode == ModeStrict {
			return "", xerrors.Wrap(xerrors.ErrMissingConfig, "PETBLOOM_API_URL must be set to a non-local endpoint in strict mode")
		}
		return DefaultBaseURL, nil
	}
	return strings.TrimRight(url, "/"), nil
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
