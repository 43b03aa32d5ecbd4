package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
)

// FallbackJWTSecret is the insecure built-in signing secret used when
// JWT_SECRET is unset. It is kept for compatibility with existing
// deployments; Load warns loudly whenever it is in effect.
const FallbackJWTSecret = "senha-temporaria"

type Config struct {
	Port                 int    `env:"PORT" envDefault:"3000"`
	DatabaseURL          string `env:"DATABASE_URL,required"`
	RedisURL             string `env:"REDIS_URL"`
	JWTSecret            string `env:"JWT_SECRET"`
	LoginTokenTTLHours   int    `env:"LOGIN_TOKEN_TTL_HOURS" envDefault:"6"`
	SignupTokenTTLHours  int    `env:"SIGNUP_TOKEN_TTL_HOURS" envDefault:"168"`
	BcryptCost           int    `env:"BCRYPT_COST" envDefault:"10"`
	LoginRateLimitPerMin int    `env:"LOGIN_RATE_LIMIT_PER_MIN" envDefault:"10"`
	LogLevel             string `env:"LOG_LEVEL" envDefault:"info"`
}

func (c *Config) LoginTokenTTL() time.Duration {
	return time.Duration(c.LoginTokenTTLHours) * time.Hour
}

func (c *Config) SignupTokenTTL() time.Duration {
	return time.Duration(c.SignupTokenTTLHours) * time.Hour
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = FallbackJWTSecret
		log.Warn().Msg("JWT_SECRET is unset: falling back to the built-in insecure secret, do not run like this in production")
	}

	return &cfg, nil
}
