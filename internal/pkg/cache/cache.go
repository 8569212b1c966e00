package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/dewatanation/admin-panel/internal/pkg/config"
)

var client *redis.Client

// SetupCache connects to the Redis/Dragonfly server that backs sessions.
// Without CACHE_HOST it returns nil and sessions stay in process memory.
func SetupCache(cfg config.CacheConfig, log zerolog.Logger) *redis.Client {
	if cfg.Host == "" {
		log.Info().Msg("CACHE_HOST not set, sessions are kept in memory")
		client = nil
		return nil
	}

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	// Test the connection
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		log.Warn().Err(err).Msg("Could not connect to session cache")
	} else {
		log.Info().Str("reply", pong).Msg("Connected to session cache")
	}
	return client
}

// Ping checks the cache; a nil client (memory sessions) is always healthy.
func Ping(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Ping(ctx).Err()
}
