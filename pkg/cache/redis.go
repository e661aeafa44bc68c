package cache

import (
	"context"
	"fmt"
	"time"

	"event-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// InitRedis creates the redis client used for catalog caching.
// Returns nil when no address is configured; callers treat a nil
// client as cache-disabled.
func InitRedis(config utils.RedisConfig) (*redis.Client, error) {
	if config.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis failed: %w", err)
	}

	return client, nil
}
