// Package livemap последние известные позиции водителей.
//
// Записи создаются и обновляются событиями местоположения и удаляются
// периодической чисткой, если водитель молчит дольше StaleAfter.
// Каждое изменение публикует новую карту, читатели получают неизменяемый снимок.
package livemap

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"khaogully-admin/internal/entities"
	"khaogully-admin/pkg/logger"
	"khaogully-admin/pkg/realtime"
)

const DefaultStaleAfter = 90 * time.Second

type locations map[int64]entities.DriverLocation

type Config struct {
	StaleAfter time.Duration
}

type Tracker struct {
	log        logger.Logger
	staleAfter time.Duration
	now        func() time.Time

	// mu сериализует писателей, читатели идут через current без блокировки.
	mu      sync.Mutex
	current atomic.Pointer[locations]
}

type Option func(*Tracker)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

func New(log logger.Logger, cfg Config, opts ...Option) *Tracker {
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = DefaultStaleAfter
	}

	t := &Tracker{
		log:        log.With(logger.NewField("view", "livemap")),
		staleAfter: cfg.StaleAfter,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}

	empty := locations{}
	t.current.Store(&empty)
	return t
}

// Upsert last_seen выставляется по часам консоли, время устройства не учитывается.
func (t *Tracker) Upsert(update entities.LocationUpdate) entities.DriverLocation {
	loc := entities.DriverLocation{
		DriverID:  update.DriverID,
		Lat:       update.Lat,
		Lng:       update.Lng,
		Status:    update.Status,
		Heading:   update.Heading,
		Speed:     update.Speed,
		Accuracy:  update.Accuracy,
		Timestamp: update.Timestamp,
		LastSeen:  t.now(),
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	prev := *t.current.Load()
	next := make(locations, len(prev)+1)
	for id, l := range prev {
		next[id] = l
	}
	next[loc.DriverID] = loc
	t.publish(next)
	return loc
}

// Sweep удаляет записи, у которых now - last_seen > StaleAfter.
// Возвращает число удалённых.
func (t *Tracker) Sweep() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	prev := *t.current.Load()

	var stale int
	for _, l := range prev {
		if now.Sub(l.LastSeen) > t.staleAfter {
			stale++
		}
	}
	if stale == 0 {
		return 0
	}

	next := make(locations, len(prev)-stale)
	for id, l := range prev {
		if now.Sub(l.LastSeen) <= t.staleAfter {
			next[id] = l
		}
	}
	t.publish(next)
	return stale
}

// Get возвращает позицию водителя из текущего снимка.
func (t *Tracker) Get(driverID int64) (entities.DriverLocation, bool) {
	l, ok := (*t.current.Load())[driverID]
	return l, ok
}

func (t *Tracker) Len() int {
	return len(*t.current.Load())
}

// Snapshot копия текущих позиций, отсортированная по driver_id.
func (t *Tracker) Snapshot() []entities.DriverLocation {
	current := *t.current.Load()

	res := make([]entities.DriverLocation, 0, len(current))
	for _, l := range current {
		res = append(res, l)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].DriverID < res[j].DriverID })
	return res
}

// Reset очищает карту при размонтировании страницы.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.publish(locations{})
}

// OnLocation обработчик driver_location и location_update.
func (t *Tracker) OnLocation(_ context.Context, ev realtime.Event) error {
	var update entities.LocationUpdate
	if err := ev.Decode(&update); err != nil {
		return fmt.Errorf("decode location update: %w", err)
	}
	if update.DriverID <= 0 {
		return fmt.Errorf("%w: driver_id is required", ErrBadLocation)
	}

	loc := t.Upsert(update)
	t.log.Debug("driver location updated",
		logger.NewField("driver_id", loc.DriverID),
		logger.NewField("lat", loc.Lat),
		logger.NewField("lng", loc.Lng),
	)
	return nil
}

// publish вызывается под mu.
func (t *Tracker) publish(next locations) {
	t.current.Store(&next)
	trackedDrivers.Set(float64(len(next)))
}
