// Package session tracks revoked session tokens. A JWT stays valid until
// it expires, so logout writes the token's jti to redis with a TTL equal
// to the remaining lifetime and the auth gate rejects denylisted tokens.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type Store interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	Revoked(ctx context.Context, jti string) (bool, error)
}

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// token already expired, nothing to deny
		return nil
	}
	return s.rdb.Set(ctx, "revoked:"+jti, "1", ttl).Err()
}

func (s *RedisStore) Revoked(ctx context.Context, jti string) (bool, error) {
	_, err := s.rdb.Get(ctx, "revoked:"+jti).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
