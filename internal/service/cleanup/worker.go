package cleanup

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// IdleTableRemover is implemented by game.Manager.
type IdleTableRemover interface {
	CleanupIdle(maxIdle time.Duration) int
}

type Worker struct {
	Tables   IdleTableRemover
	MaxIdle  time.Duration
	Interval time.Duration
}

func NewWorker(tables IdleTableRemover, maxIdle, interval time.Duration) *Worker {
	return &Worker{Tables: tables, MaxIdle: maxIdle, Interval: interval}
}

// Start runs the cleanup on every tick until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	log.Info().Str("component", "cleanup").Dur("interval", w.Interval).
		Dur("max_idle", w.MaxIdle).Msg("background worker started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("component", "cleanup").Msg("background worker stopped")
			return
		case <-ticker.C:
			w.runCleanup()
		}
	}
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup() int {
	removed := w.Tables.CleanupIdle(w.MaxIdle)
	log.Debug().Str("component", "cleanup").Int("removed", removed).Msg("scheduled cleanup finished")
	return removed
}
