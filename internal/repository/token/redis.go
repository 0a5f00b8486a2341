package token

import (
	"context"
	"fmt"
	"time"

	"khaogully-admin/internal/repository"
	"khaogully-admin/internal/service/session"
)

type redisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	Key(parts ...string) string
}

// RedisStore делит сессию между несколькими экземплярами консоли.
type RedisStore struct {
	client redisClient
	key    string
	ttl    time.Duration
}

// NewRedisStore ttl=0 хранит токен без срока.
func NewRedisStore(client redisClient, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		key:    client.Key("session", "admin_token"),
		ttl:    ttl,
	}
}

func (s *RedisStore) Load(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key)
	if err != nil {
		if repository.IsMissing(err) {
			return "", session.ErrTokenNotFound
		}
		return "", fmt.Errorf("redis get token: %w", err)
	}
	if token == "" {
		return "", session.ErrTokenNotFound
	}
	return token, nil
}

func (s *RedisStore) Save(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, s.ttl); err != nil {
		return fmt.Errorf("redis set token: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key); err != nil {
		return fmt.Errorf("redis del token: %w", err)
	}
	return nil
}
