package token_bucket

import (
	"math"
	"sync"
	"time"
)

/*
Allow возвращает true/false: запрос либо принимается, либо отклоняется.
Токены копятся дробно, поэтому медленная скорость пополнения не теряет
накопленное время между вызовами.
*/

type Limiter interface {
	Allow() bool
}

// Clock позволяет подменить время в тестах.
type Clock func() time.Time

type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        Clock
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return NewTokenBucketWithClock(capacity, refillRate, time.Now)
}

func NewTokenBucketWithClock(capacity int, refillRate float64, now Clock) *TokenBucket {
	if capacity < 0 {
		capacity = 0
	}
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: now(),
		now:        now,
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

// Available возвращает целое число доступных сейчас токенов.
func (t *TokenBucket) Available() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()
	return int(math.Floor(t.tokens))
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}
	t.lastRefill = now

	if t.refillRate <= 0 {
		return
	}
	t.tokens = math.Min(t.capacity, t.tokens+elapsed*t.refillRate)
}
