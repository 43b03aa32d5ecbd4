package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigMethods(t *testing.T) {
	t.Run("Addr returns formatted port", func(t *testing.T) {
		cfg := &Config{Port: 3000}
		assert.Equal(t, ":3000", cfg.Addr())
	})

	t.Run("LoginTokenTTL converts hours to duration", func(t *testing.T) {
		cfg := &Config{LoginTokenTTLHours: 6}
		assert.Equal(t, 6*time.Hour, cfg.LoginTokenTTL())
	})

	t.Run("SignupTokenTTL converts hours to duration", func(t *testing.T) {
		cfg := &Config{SignupTokenTTLHours: 168}
		assert.Equal(t, 168*time.Hour, cfg.SignupTokenTTL())
	})
}

func TestLoad(t *testing.T) {
	originalEnv := map[string]string{
		"PORT":                     os.Getenv("PORT"),
		"DATABASE_URL":             os.Getenv("DATABASE_URL"),
		"REDIS_URL":                os.Getenv("REDIS_URL"),
		"JWT_SECRET":               os.Getenv("JWT_SECRET"),
		"LOGIN_TOKEN_TTL_HOURS":    os.Getenv("LOGIN_TOKEN_TTL_HOURS"),
		"SIGNUP_TOKEN_TTL_HOURS":   os.Getenv("SIGNUP_TOKEN_TTL_HOURS"),
		"BCRYPT_COST":              os.Getenv("BCRYPT_COST"),
		"LOGIN_RATE_LIMIT_PER_MIN": os.Getenv("LOGIN_RATE_LIMIT_PER_MIN"),
		"LOG_LEVEL":                os.Getenv("LOG_LEVEL"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	t.Run("loads config with defaults", func(t *testing.T) {
		os.Setenv("DATABASE_URL", "postgres://localhost/test")
		os.Unsetenv("PORT")
		os.Unsetenv("REDIS_URL")
		os.Unsetenv("JWT_SECRET")
		os.Unsetenv("LOGIN_TOKEN_TTL_HOURS")
		os.Unsetenv("SIGNUP_TOKEN_TTL_HOURS")
		os.Unsetenv("BCRYPT_COST")
		os.Unsetenv("LOGIN_RATE_LIMIT_PER_MIN")
		os.Unsetenv("LOG_LEVEL")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "postgres://localhost/test", cfg.DatabaseURL)
		assert.Equal(t, "", cfg.RedisURL)
		assert.Equal(t, 6, cfg.LoginTokenTTLHours)
		assert.Equal(t, 168, cfg.SignupTokenTTLHours)
		assert.Equal(t, 10, cfg.BcryptCost)
		assert.Equal(t, 10, cfg.LoginRateLimitPerMin)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("unset JWT_SECRET falls back to the built-in insecure secret", func(t *testing.T) {
		os.Setenv("DATABASE_URL", "postgres://localhost/test")
		os.Unsetenv("JWT_SECRET")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, FallbackJWTSecret, cfg.JWTSecret)
	})

	t.Run("explicit JWT_SECRET wins over the fallback", func(t *testing.T) {
		os.Setenv("DATABASE_URL", "postgres://localhost/test")
		os.Setenv("JWT_SECRET", "um-segredo-forte")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "um-segredo-forte", cfg.JWTSecret)
	})

	t.Run("missing DATABASE_URL fails", func(t *testing.T) {
		os.Unsetenv("DATABASE_URL")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("loads custom values", func(t *testing.T) {
		os.Setenv("DATABASE_URL", "postgres://localhost/test")
		os.Setenv("PORT", "8081")
		os.Setenv("LOGIN_TOKEN_TTL_HOURS", "1")
		os.Setenv("SIGNUP_TOKEN_TTL_HOURS", "24")
		os.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8081, cfg.Port)
		assert.Equal(t, time.Hour, cfg.LoginTokenTTL())
		assert.Equal(t, 24*time.Hour, cfg.SignupTokenTTL())
		assert.Equal(t, "debug", cfg.LogLevel)
	})
}
