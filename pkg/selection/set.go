// Package selection хранит набор выбранных идентификаторов для пакетных действий.
package selection

import (
	"cmp"
	"slices"
	"sync"
)

type Set[K cmp.Ordered] struct {
	mu    sync.RWMutex
	items map[K]struct{}
}

func New[K cmp.Ordered]() *Set[K] {
	return &Set[K]{items: make(map[K]struct{})}
}

// Toggle переключает принадлежность id и возвращает новое состояние.
func (s *Set[K]) Toggle(id K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; ok {
		delete(s.items, id)
		return false
	}
	s.items[id] = struct{}{}
	return true
}

// ToggleAll заменяет выбор ровно на eligible. Если выбор уже совпадает
// с eligible, он очищается. Возвращает true, если после вызова что-то выбрано.
func (s *Set[K]) ToggleAll(eligible []K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := make(map[K]struct{}, len(eligible))
	for _, id := range eligible {
		target[id] = struct{}{}
	}

	if sameKeys(s.items, target) {
		s.items = make(map[K]struct{})
		return false
	}
	s.items = target
	return len(target) > 0
}

func (s *Set[K]) Has(id K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.items[id]
	return ok
}

func (s *Set[K]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// IDs возвращает отсортированную копию выбранных id.
func (s *Set[K]) IDs() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]K, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s *Set[K]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[K]struct{})
}

// Retain убирает из выбора id, которых больше нет в keep.
func (s *Set[K]) Retain(keep []K) {
	s.mu.Lock()
	defer s.mu.Unlock()

	allowed := make(map[K]struct{}, len(keep))
	for _, id := range keep {
		allowed[id] = struct{}{}
	}
	for id := range s.items {
		if _, ok := allowed[id]; !ok {
			delete(s.items, id)
		}
	}
}

func sameKeys[K comparable](a, b map[K]struct{}) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
