package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Storage is a byte-valued key/value store in Redis.
type Storage struct {
	db     redis.UniversalClient
	prefix string
}

func NewStorage(client redis.UniversalClient, prefix string) *Storage {
	return &Storage{db: client, prefix: prefix}
}

// Get returns nil, nil when the key does not exist.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.db.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

func (s *Storage) Set(ctx context.Context, key string, val []byte) error {
	return s.db.Set(ctx, s.prefix+key, val, 0).Err()
}

// Delete removes all keys in one round trip.
func (s *Storage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.prefix + k
	}
	return s.db.Del(ctx, full...).Err()
}
