package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Options configures the Redis connection backing the name lock.
type Options struct {
	Addr        string
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
}

// RedisClient owns the go-redis client shared by the name lock and the
// health endpoint.
type RedisClient struct {
	Client *redis.Client
}

func NewRedisClient(opts Options) *RedisClient {
	return &RedisClient{
		Client: redis.NewClient(&redis.Options{
			Addr:         opts.Addr,
			Password:     opts.Password,
			DB:           opts.DB,
			PoolSize:     opts.PoolSize,
			MinIdleConns: 1,
			MaxRetries:   2,
			DialTimeout:  opts.DialTimeout,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		}),
	}
}

// Connect pings the server once. The caller decides whether a failure is
// fatal.
func (r *RedisClient) Connect(ctx context.Context) error {
	addr := r.Client.Options().Addr
	log.Info().Str("addr", addr).Msg("[REDIS] connecting")

	if _, err := r.HealthCheck(ctx); err != nil {
		return fmt.Errorf("redis %s: %w", addr, err)
	}

	log.Info().Str("addr", addr).Msg("[REDIS] connected")
	return nil
}

// HealthCheck pings Redis and reports the round trip.
func (r *RedisClient) HealthCheck(ctx context.Context) (time.Duration, error) {
	if r == nil || r.Client == nil {
		return 0, errors.New("redis client is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return 0, fmt.Errorf("ping failed: %w", err)
	}
	return time.Since(start), nil
}

func (r *RedisClient) Close() error {
	if r == nil || r.Client == nil {
		return nil
	}
	return r.Client.Close()
}
