// Package redis keeps storage slots as plain Redis string keys without expiry.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ghuser/wherearethenoodles/pkg/cache"
)

// Slot implements a storage slot on Redis.
type Slot struct {
	client *cache.RedisClient
}

// New returns a Slot backed by client.
func New(client *cache.RedisClient) *Slot {
	return &Slot{client: client}
}

// Get returns the value stored under key; redis.Nil maps to ok=false.
func (s *Slot) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Client().Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return value, true, nil
}

// Set overwrites key with value. The key never expires.
func (s *Slot) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Client().Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Ping checks the Redis connection health.
func (s *Slot) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// Close is a no-op; the client is owned by the caller.
func (s *Slot) Close() error { return nil }
