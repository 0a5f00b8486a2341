package daterange

import "time"

// Range включает оба конца по дням: From с начала суток, To до конца суток.
// Нулевые границы не ограничивают диапазон.
type Range struct {
	From time.Time
	To   time.Time
}

func (r Range) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

func (r Range) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(startOfDay(r.From)) {
		return false
	}
	if !r.To.IsZero() && t.After(endOfDay(r.To)) {
		return false
	}
	return true
}

// Filter возвращает элементы, чья дата попадает в диапазон.
func Filter[T any](items []T, at func(T) time.Time, r Range) []T {
	if r.IsZero() {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if r.Contains(at(item)) {
			out = append(out, item)
		}
	}
	return out
}

// Parse разбирает границы в формате 2006-01-02. Пустая строка - нет границы.
func Parse(from, to string) (Range, error) {
	var r Range
	var err error
	if from != "" {
		if r.From, err = time.Parse(time.DateOnly, from); err != nil {
			return Range{}, err
		}
	}
	if to != "" {
		if r.To, err = time.Parse(time.DateOnly, to); err != nil {
			return Range{}, err
		}
	}
	return r, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
