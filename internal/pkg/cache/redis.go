// Package cache builds the Redis client shared by the response cache and the rate limiter.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects to Redis and pings it with a short timeout.
// It returns nil when the server is unreachable so callers can run without caching and rate limiting.
func NewRedisClient(opts Options, logger zerolog.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", opts.Addr).Msg("Redis unavailable, caching and rate limiting disabled")
		_ = client.Close()
		return nil
	}

	logger.Info().Str("addr", opts.Addr).Msg("Connected to Redis")
	return client
}
