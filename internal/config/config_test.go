package config

import (
	"errors"
	"testing"
	"time"

	xerrors "petbloom/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PETBLOOM_MODE", "")
	t.Setenv("PETBLOOM_REQUEST_TIMEOUT", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("JWT_TTL", "")

	cfg := Load()

	assert.Equal(t, ModeDemo, cfg.Mode)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, ":8000", cfg.HTTPAddr)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
}

func TestLoadReadsOverrides(t *testing.T) {
	t.Setenv("PETBLOOM_MODE", "STRICT")
	t.Setenv("PETBLOOM_API_URL", "https://api.petbloom.io/api/v1")
	t.Setenv("PETBLOOM_REQUEST_TIMEOUT", "5s")

	cfg := Load()
	assert.Equal(t, ModeStrict, cfg.Mode)
	assert.Equal(t, "https://api.petbloom.io/api/v1", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestResolveBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		mode    Mode
		want    string
		wantErr bool
	}{
		{name: "empty in demo falls back", url: "", mode: ModeDemo, want: DefaultBaseURL},
		{name: "localhost in demo falls back", url: "http://localhost:9999/api/v1", mode: ModeDemo, want: DefaultBaseURL},
		{name: "remote survives", url: "https://api.petbloom.io/api/v1", mode: ModeDemo, want: "https://api.petbloom.io/api/v1"},
		{name: "trailing slash trimmed", url: "https://api.petbloom.io/api/v1/", mode: ModeDemo, want: "https://api.petbloom.io/api/v1"},
		{name: "empty in strict fails", url: "", mode: ModeStrict, wantErr: true},
		{name: "localhost in strict fails", url: "http://localhost:8000/api/v1", mode: ModeStrict, wantErr: true},
		{name: "remote in strict survives", url: "https://api.petbloom.io/api/v1", mode: ModeStrict, want: "https://api.petbloom.io/api/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := AppConfig{APIBaseURL: tt.url, Mode: tt.mode}
			got, err := cfg.ResolveBaseURL()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, xerrors.ErrMissingConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
