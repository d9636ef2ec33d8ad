package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const limiterKeyPrefix = "ratelimit:login:"

// counter increments the hit count of key inside a window that starts on the
// first hit.
type counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// incrExpirer is the subset of *redis.Client the counter needs.
type incrExpirer interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

type redisCounter struct {
	client incrExpirer
}

// Incr sets the TTL only on the first hit of a window. Plain EXPIRE keeps the
// limiter working on Redis servers older than 7.
func (c redisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	n, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		if err := c.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, fmt.Errorf("expire %s: %w", key, err)
		}
	}
	return n, nil
}

// LoginLimiter is a fixed-window rate limiter keyed by client identifier. It
// satisfies echo's middleware.RateLimiterStore. When Redis is unreachable the
// request is allowed and a warning is logged.
type LoginLimiter struct {
	counter counter
	limit   int64
	window  time.Duration
	log     zerolog.Logger
}

func NewLoginLimiter(client *redis.Client, limit int, window time.Duration, log zerolog.Logger) *LoginLimiter {
	return newLoginLimiter(redisCounter{client: client}, limit, window, log)
}

func newLoginLimiter(c counter, limit int, window time.Duration, log zerolog.Logger) *LoginLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LoginLimiter{
		counter: c,
		limit:   int64(limit),
		window:  window,
		log:     log.With().Str("component", "login_limiter").Logger(),
	}
}

// Allow reports whether identifier may attempt another login in the current window.
func (l *LoginLimiter) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	n, err := l.counter.Incr(ctx, l.key(identifier), l.window)
	if err != nil {
		l.log.Warn().Err(err).Str("identifier", identifier).Msg("rate limit check failed, allowing request")
		return true, nil
	}
	return n <= l.limit, nil
}

func (l *LoginLimiter) key(identifier string) string {
	return fmt.Sprintf("%s%s", limiterKeyPrefix, identifier)
}
