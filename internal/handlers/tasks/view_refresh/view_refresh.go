package view_refresh

import (
	"context"
	"time"
)

// fetchTimeout ограничивает загрузку для страниц без опроса, где interval = 0.
const fetchTimeout = 30 * time.Second

type View interface {
	Reload(ctx context.Context) error
}

// ReloadFunc позволяет опрашивать вспомогательные загрузки страницы.
type ReloadFunc func(ctx context.Context) error

func (f ReloadFunc) Reload(ctx context.Context) error { return f(ctx) }

// ViewRefresh периодически перезагружает представление страницы.
// С interval <= 0 выполняется только первичная загрузка при монтировании.
type ViewRefresh struct {
	name     string
	view     View
	interval time.Duration
}

func NewViewRefresh(name string, view View, interval time.Duration) *ViewRefresh {
	return &ViewRefresh{
		name:     name,
		view:     view,
		interval: interval,
	}
}

func (v *ViewRefresh) TTL() time.Duration {
	return v.interval
}

func (v *ViewRefresh) Do(ctx context.Context) error {
	timeout := v.interval
	if timeout <= 0 {
		timeout = fetchTimeout
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return v.view.Reload(ctxWithTimeout)
}

func (v *ViewRefresh) Info() string {
	return v.name + " refresh"
}
