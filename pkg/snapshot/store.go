// Package snapshot хранит последнее применённое состояние представления
// и отбрасывает устаревшие ответы.
//
// Каждая загрузка получает билет (Begin) до отправки запроса. Ответ
// применяется (Apply), только если его билет новее последнего применённого,
// поэтому ответ на ранний запрос, пришедший позже, не затирает свежие данные.
package snapshot

import (
	"sync"
	"time"
)

type Ticket uint64

type Store[T any] struct {
	mu        sync.RWMutex
	value     T
	issued    Ticket
	applied   Ticket
	updatedAt time.Time
	closed    bool
	now       func() time.Time
}

func New[T any]() *Store[T] {
	return &Store[T]{now: time.Now}
}

// Begin выдаёт следующий билет загрузки.
func (s *Store[T]) Begin() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued++
	return s.issued
}

// Apply применяет значение. Возвращает false, если билет устарел
// или хранилище закрыто.
func (s *Store[T]) Apply(ticket Ticket, value T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || ticket <= s.applied {
		return false
	}
	s.value = value
	s.applied = ticket
	s.updatedAt = s.now()
	return true
}

// Load возвращает текущее значение и время его применения.
func (s *Store[T]) Load() (T, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.value, s.updatedAt
}

func (s *Store[T]) Value() T {
	v, _ := s.Load()
	return v
}

// Close запрещает дальнейшие Apply: поздние ответы после размонтирования
// страницы игнорируются.
func (s *Store[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
}

// Reopen снова разрешает Apply после повторного монтирования.
func (s *Store[T]) Reopen() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = false
}
