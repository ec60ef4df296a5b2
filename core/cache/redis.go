package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-appointment-api/core/logger"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
}

func Init(addr, password string, db int) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Cache:Init:Connected", "addr", addr, "db", db)
	return &Cache{client: client}, nil
}

func (c *Cache) Client() *redis.Client {
	return c.client
}

// GetJSON unmarshals the cached value into dest. Returns false on a miss;
// a corrupt entry is treated as a miss and deleted.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		logger.Warn("Cache:GetJSON:CorruptEntry", "key", key, "error", err)
		c.client.Del(ctx, key)
		return false, nil
	}
	return true, nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, ttl).Err()
}

func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	return c.client.Del(ctx, keys...).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}
