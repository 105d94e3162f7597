package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix namespaces application keys inside a shared Redis.
const redisKeyPrefix = "tripplanner:"

// redisStore keeps every key as a Redis string without expiry.
type redisStore struct {
	client *redis.Client
}

// NewRedis returns a Store backed by client. Close on the Store closes client.
func NewRedis(client *redis.Client) Store {
	return &redisStore{client: client}
}

// OpenRedis connects to the Redis server at addr and verifies it answers.
func OpenRedis(ctx context.Context, addr, password string) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("storage.OpenRedis: ping: %w", err)
	}
	return NewRedis(client), nil
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage.redisStore.Get: %w", err)
	}
	return v, nil
}

func (s *redisStore) Put(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("storage.redisStore.Put: %w", err)
	}
	return nil
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
