package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisDialTimeout = 3 * time.Second
	redisPingTimeout = 2 * time.Second

	// redisPrefix namespaces ppf keys in a shared database
	redisPrefix = "ppf:"
)

// Redis stores keys in a Redis database. Values never expire. Subscribers
// only see writes made through this Store instance.
type Redis struct {
	hub
	client *redis.Client
}

// OpenRedis parses a Redis URL and verifies connectivity
func OpenRedis(ctx context.Context, redisURL string) (*Redis, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("kv: invalid redis URL: %w", err)
	}
	options.DialTimeout = redisDialTimeout

	client := redis.NewClient(options)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("kv: redis ping failed: %w", err)
	}

	return &Redis{client: client}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, redisPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrap("get", key, err)
	}
	return value, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, redisPrefix+key, value, 0).Err(); err != nil {
		return wrap("set", key, err)
	}
	r.publish(key, value)
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
