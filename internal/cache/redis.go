package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Towhid-Raiyan/college-selector-server/internal/config"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Init connects the optional catalog cache. With an empty RedisAddr the
// cache stays disabled and every helper below is a no-op; that is the
// default deployment mode, where catalog reads always hit Mongo.
func Init(cfg *config.Config) error {
	if cfg.RedisAddr == "" {
		return nil
	}

	client = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return client.Ping(ctx).Err()
}

// Enabled reports whether Init connected a cache.
func Enabled() bool {
	return client != nil
}

// GetJSON reads a key and, if it exists, deserializes the JSON into dest.
// The bool reports a hit.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}

	val, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON serializes value to JSON and stores it with a TTL in seconds.
func SetJSON(ctx context.Context, key string, value any, ttlSeconds int) error {
	if client == nil {
		return nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return client.Set(ctx, key, b, time.Duration(ttlSeconds)*time.Second).Err()
}
