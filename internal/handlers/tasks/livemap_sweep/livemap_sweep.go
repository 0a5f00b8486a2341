package livemap_sweep

import (
	"context"
	"time"

	"khaogully-admin/pkg/logger"
)

type Tracker interface {
	Sweep() int
	Len() int
}

type LivemapSweep struct {
	log      logger.Logger
	tracker  Tracker
	interval time.Duration
}

func NewLivemapSweep(log logger.Logger, tracker Tracker, interval time.Duration) *LivemapSweep {
	return &LivemapSweep{
		log:      log,
		tracker:  tracker,
		interval: interval,
	}
}

func (l *LivemapSweep) TTL() time.Duration {
	return l.interval
}

func (l *LivemapSweep) Do(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if removed := l.tracker.Sweep(); removed > 0 {
		l.log.With(
			logger.NewField("stale_drivers", removed),
			logger.NewField("tracked_drivers", l.tracker.Len()),
		).Info("livemap sweep")
	}
	return nil
}

func (l *LivemapSweep) Info() string {
	return "livemap sweep"
}
