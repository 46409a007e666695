// Package cache is an optional Redis-backed read cache for the problem
// listings. When no Redis URL is configured every call is a no-op and
// handlers fall through to Mongo.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	redisClient *redis.Client
	enabled     bool
)

// Initialize sets up the Redis connection if redisURL is provided. Any
// failure just disables caching; the service works without it.
func Initialize(redisURL string, logger *zap.Logger) {
	if redisURL == "" {
		logger.Info("Redis URL not provided, problem-list caching disabled")
		enabled = false
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Warn("Failed to parse Redis URL, caching disabled", zap.Error(err))
		enabled = false
		return
	}

	redisClient = redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("Failed to connect to Redis, caching disabled", zap.Error(err))
		enabled = false
		return
	}

	enabled = true
	logger.Info("Redis problem-list cache initialized")
}

// Set stores value as JSON under key with the given TTL.
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if !enabled {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return redisClient.Set(ctx, key, data, expiration).Err()
}

// Get unmarshals the cached value into dest. Returns redis.Nil on a miss
// or when caching is disabled.
func Get(ctx context.Context, key string, dest interface{}) error {
	if !enabled {
		return redis.Nil
	}

	data, err := redisClient.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// Close releases the Redis connection on shutdown.
func Close() error {
	if redisClient == nil {
		return nil
	}
	return redisClient.Close()
}
