// Package submitguard не даёт отправить одну и ту же пакетную операцию
// повторно, пока предыдущая отправка не завершилась или не истёк TTL.
package submitguard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrInFlight = errors.New("identical submission already in progress")

// Release снимает блокировку после завершения отправки.
type Release func(ctx context.Context)

type Guard interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error)
}

type Memory struct {
	mu    sync.Mutex
	held  map[string]time.Time
	clock func() time.Time
}

func NewMemory() *Memory {
	return &Memory{held: make(map[string]time.Time), clock: time.Now}
}

func (m *Memory) Acquire(_ context.Context, key string, ttl time.Duration) (Release, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock()
	if until, ok := m.held[key]; ok && now.Before(until) {
		return nil, fmt.Errorf("%w: %s", ErrInFlight, key)
	}
	m.held[key] = now.Add(ttl)

	return func(context.Context) {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.held, key)
	}, nil
}

type redisStore interface {
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	Del(ctx context.Context, keys ...string) error
	Key(parts ...string) string
}

// Redis разделяет блокировку между несколькими экземплярами консоли.
type Redis struct {
	store redisStore
}

func NewRedis(store redisStore) *Redis {
	return &Redis{store: store}
}

func (r *Redis) Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error) {
	redisKey := r.store.Key("submit", key)
	ok, err := r.store.SetNX(ctx, redisKey, "1", ttl)
	if err != nil {
		return nil, fmt.Errorf("acquire submit guard: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInFlight, key)
	}

	return func(ctx context.Context) {
		_ = r.store.Del(context.WithoutCancel(ctx), redisKey)
	}, nil
}
