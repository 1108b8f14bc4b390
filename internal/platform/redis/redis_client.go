// Package redis bootstraps the redis client used for read caching.
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"devlens_backend/internal/platform/config"
)

// NewRedisClient connects to redis using the configured address.
// Callers treat a nil client as "no cache", so a connection failure
// here is reported but not fatal.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	addr := cfg.RedisHost + ":" + cfg.RedisPort

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
