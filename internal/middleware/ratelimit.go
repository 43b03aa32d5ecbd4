package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/cinelog/review-server-go/internal/audit"
	"github.com/cinelog/review-server-go/internal/config"
)

const loginRateLimitKeyPrefix = "loginlimit:"

var rateLimitScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

local windowStart = now - window

redis.call('ZREMRANGEBYSCORE', key, '-inf', windowStart)

local count = redis.call('ZCARD', key)

if count >= limit then
    local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
    local resetAt = 0
    if #oldest >= 2 then
        resetAt = tonumber(oldest[2]) + window
    else
        resetAt = now + window
    end
    return {0, 0, resetAt}
end

redis.call('ZADD', key, now, now .. '-' .. math.random())
redis.call('EXPIRE', key, window + 10)

local remaining = limit - count - 1
local resetAt = now + window

return {1, remaining, resetAt}
`)

type RedisRateLimiter struct {
	client *redis.Client
	window time.Duration
}

func NewRedisRateLimiter(client *redis.Client, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{client: client, window: window}
}

// Check fails open: when redis is unreachable the request is allowed rather
// than turning the limiter into an outage.
func (rl *RedisRateLimiter) Check(ctx context.Context, key string, limit int) (allowed bool, remaining int, resetAt int64) {
	now := time.Now().Unix()
	windowSec := int64(rl.window.Seconds())

	result, err := rateLimitScript.Run(ctx, rl.client, []string{key}, now, windowSec, limit).Int64Slice()
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis rate limit check failed, allowing request")
		return true, limit - 1, now + windowSec
	}

	if len(result) != 3 {
		log.Warn().Str("key", key).Msg("unexpected redis rate limit result")
		return true, limit - 1, now + windowSec
	}

	return result[0] == 1, int(result[1]), result[2]
}

// LoginRateLimitMiddleware throttles credential guessing per client IP. It is
// a hardening extension around the login endpoint only; a nil redis client
// disables it entirely.
type LoginRateLimitMiddleware struct {
	limiter *RedisRateLimiter
	limit   int
}

func NewLoginRateLimitMiddleware(client *redis.Client, limit int) *LoginRateLimitMiddleware {
	if client == nil {
		return &LoginRateLimitMiddleware{}
	}
	return &LoginRateLimitMiddleware{
		limiter: NewRedisRateLimiter(client, config.LoginRateLimitWindow),
		limit:   limit,
	}
}

func (m *LoginRateLimitMiddleware) Handler(next http.Handler) http.Handler {
	if m.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// RealIP runs earlier in the chain, so RemoteAddr is the client
		// address and the limiter keys on the same value the audit log sees.
		key := loginRateLimitKeyPrefix + r.RemoteAddr

		allowed, remaining, resetAt := m.limiter.Check(r.Context(), key, m.limit)

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(m.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetAt, 10))

		if !allowed {
			audit.LogFromRequest(r, audit.Event{Type: audit.EventRateLimitExceed})
			w.Header().Set("Retry-After", "60")
			writeJSON(w, http.StatusTooManyRequests, map[string]string{
				"error": "Limite de requisições excedido.",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}
