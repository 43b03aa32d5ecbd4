package config

import "time"

const (
	ServerReadTimeout     = 15 * time.Second
	ServerRequestTimeout  = 30 * time.Second
	ServerIdleTimeout     = 60 * time.Second
	ServerShutdownTimeout = 10 * time.Second

	DBPingTimeout = 5 * time.Second

	// Sliding window used by the optional login rate limiter.
	LoginRateLimitWindow = time.Minute
)
