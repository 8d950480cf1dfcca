package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "JWT_SECRET", "JWT_EXPIRY", "MAX_LENGTH", "MAX_COUNT"} {
		unsetenv(t, key)
	}

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 1024, cfg.MaxLength)
	assert.Equal(t, 100, cfg.MaxCount)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_EXPIRY", "90m")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("MAX_COUNT", "0")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 90*time.Minute, cfg.JWTExpiry)
	assert.InDelta(t, 2.5, cfg.RateLimitRPS, 0.001)
	assert.Equal(t, 1, cfg.MaxCount)
}

func TestParseProductionRequiresSecret(t *testing.T) {
	t.Setenv("ENV", "production")
	unsetenv(t, "JWT_SECRET")

	_, err := Parse()
	assert.ErrorIs(t, err, ErrInsecureSecret)

	t.Setenv("JWT_SECRET", "a-real-secret")
	_, err = Parse()
	assert.NoError(t, err)
}

func TestParseInvalidValue(t *testing.T) {
	t.Setenv("MAX_LENGTH", "lots")

	_, err := Parse()
	assert.Error(t, err)
}

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}
