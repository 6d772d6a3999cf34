package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store backed by a Redis server. It is meant for
// agents embedded in server-side processes, where durable state has to
// survive process restarts and a shared Redis is already part of the stack.
type RedisStore struct {
	client    *redis.Client
	namespace string
}

// NewRedisStore creates a Redis-backed store. The namespace, when non-empty,
// prefixes every key with "namespace:" so agents for different domains can
// coexist on one server.
func NewRedisStore(client *redis.Client, namespace string) *RedisStore {
	return &RedisStore{
		client:    client,
		namespace: namespace,
	}
}

// Get returns the value stored under name.
func (s *RedisStore) Get(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", ErrEmptyKey
	}

	value, err := s.client.Get(ctx, s.key(name)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}

	return value, nil
}

// Set stores value under name with an optional expiry. Redis treats a zero
// expiration as "no expiry", which matches the Store contract.
func (s *RedisStore) Set(ctx context.Context, name, value string, ttl time.Duration) error {
	if name == "" {
		return ErrEmptyKey
	}
	if ttl < 0 {
		ttl = 0
	}

	return s.client.Set(ctx, s.key(name), value, ttl).Err()
}

// Delete removes the key.
func (s *RedisStore) Delete(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyKey
	}

	return s.client.Del(ctx, s.key(name)).Err()
}

func (s *RedisStore) key(name string) string {
	if s.namespace == "" {
		return name
	}
	return s.namespace + ":" + name
}
