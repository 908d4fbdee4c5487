package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "https://ecommerce.routemisr.com/api/v1", cfg.UpstreamAPIURL)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "storefront_session", cfg.SessionCookie)
	assert.Equal(t, 30*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5*time.Minute, cfg.MirrorTTL)
	assert.Equal(t, float64(1), cfg.LoginRate)
	assert.Equal(t, 5, cfg.LoginBurst)
	assert.Empty(t, cfg.CSRFSecret)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("PORT", "9090")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("SESSION_TTL", "24h")
	t.Setenv("MIRROR_TTL", "30s")
	t.Setenv("LOGIN_RATE", "0.5")
	t.Setenv("LOGIN_BURST", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 30*time.Second, cfg.MirrorTTL)
	assert.Equal(t, 0.5, cfg.LoginRate)
	assert.Equal(t, 10, cfg.LoginBurst)
}

func TestLoad_MissingSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestLoad_InvalidDurations(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"upstream timeout", "UPSTREAM_TIMEOUT"},
		{"session ttl", "SESSION_TTL"},
		{"mirror ttl", "MIRROR_TTL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")
			t.Setenv(tt.key, "not-a-duration")

			_, err := Load()

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_InvalidLoginRate(t *testing.T) {
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("LOGIN_RATE", "fast")

	_, err := Load()

	assert.Error(t, err)
}

func TestGetEnv_FileIndirection(t *testing.T) {
	secretFile := filepath.Join(t.TempDir(), "secret")
	require.NoError(t, os.WriteFile(secretFile, []byte("from-file\n"), 0o600))

	t.Setenv("SESSION_SECRET_FILE", secretFile)
	t.Setenv("SESSION_SECRET", "from-env")

	assert.Equal(t, "from-file", getEnv("SESSION_SECRET", ""))
}

func TestGetEnv_FallsBackWhenFileUnreadable(t *testing.T) {
	t.Setenv("SESSION_SECRET_FILE", filepath.Join(t.TempDir(), "missing"))
	t.Setenv("SESSION_SECRET", "from-env")

	assert.Equal(t, "from-env", getEnv("SESSION_SECRET", ""))
}

func TestValidate_NegativeTTL(t *testing.T) {
	cfg := &Config{
		Port:           "8080",
		UpstreamAPIURL: "https://example.com",
		SessionSecret:  "0123456789abcdef0123456789abcdef",
		SessionTTL:     -time.Hour,
		MirrorTTL:      time.Minute,
	}

	assert.Error(t, cfg.Validate())
}
