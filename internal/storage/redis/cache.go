package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NameCache keeps resolved creator names in Redis so repeated sweeps skip
// the lookup store entirely for warm creators.
type NameCache struct {
	client *redis.Client
	ttl    time.Duration
}

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func NewNameCache(cfg Config) (*NameCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &NameCache{client: client, ttl: cfg.TTL}, nil
}

func key(creatorID string, version int, service string) string {
	return fmt.Sprintf("lookup:%s:%d:%s", service, version, creatorID)
}

// Get returns the cached name and whether it was present.
func (c *NameCache) Get(ctx context.Context, creatorID string, version int, service string) (string, bool, error) {
	name, err := c.client.Get(ctx, key(creatorID, version, service)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}

func (c *NameCache) Set(ctx context.Context, creatorID string, version int, service, name string) error {
	return c.client.Set(ctx, key(creatorID, version, service), name, c.ttl).Err()
}

func (c *NameCache) Close() error {
	return c.client.Close()
}
