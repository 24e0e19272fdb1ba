package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://test.db")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , https://b.example,")
	t.Setenv("CLOUDFLARE_ACCOUNT_ID", "")
	for _, key := range []string{"PORT", "TOKEN_TTL", "PUBLISH_INTERVAL"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, time.Minute, cfg.PublishInterval)
	assert.Equal(t, "https://a.example,https://b.example", cfg.AllowedOrigins)
	assert.False(t, cfg.R2.Enabled())
}

func TestFromEnvRequiresSecrets(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://test.db")
	t.Setenv("JWT_SECRET", "")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestFromEnvRejectsBadDuration(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://test.db")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("TOKEN_TTL", "tomorrow")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "TOKEN_TTL")
}

func TestFromEnvR2NeedsBucket(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://test.db")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("CLOUDFLARE_ACCOUNT_ID", "acc")
	t.Setenv("R2_BUCKET_NAME", "")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "R2_BUCKET_NAME")
}
