package confs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_EXPIRY_HOURS", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "3000", cfg.Port)
}

func TestLoadExpiryFallsBackWhenUnparsable(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_EXPIRY_HOURS", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
}

func TestLoadCustomExpiry(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_EXPIRY_HOURS", "48")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, cfg.JWTExpiry)
}

func TestDSN(t *testing.T) {
	t.Run("from url adds sslmode", func(t *testing.T) {
		cfg := &Config{DatabaseURL: "postgres://u:p@db.example.com:5432/collections"}
		dsn, err := cfg.DSN()
		require.NoError(t, err)
		assert.Contains(t, dsn, "sslmode=require")
	})

	t.Run("localhost disables ssl", func(t *testing.T) {
		cfg := &Config{
			DBHost: "localhost", DBPort: "5432",
			DBUser: "u", DBPassword: "p", DBName: "collections",
		}
		dsn, err := cfg.DSN()
		require.NoError(t, err)
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("missing parameters fail", func(t *testing.T) {
		cfg := &Config{DBHost: "localhost"}
		_, err := cfg.DSN()
		assert.Error(t, err)
	})
}
