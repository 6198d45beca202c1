package sweeper

import (
	"context"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/usecase"
)

// Engine is the part of the lifecycle engine the sweeper drives
type Engine interface {
	SweepExpired(ctx context.Context, now time.Time) (*usecase.SweepResult, error)
	ReclaimAbandoned(ctx context.Context, now time.Time, grace time.Duration) (*usecase.SweepResult, error)
}

// Config controls sweep cadence
type Config struct {
	Interval        time.Duration
	ReclaimInterval time.Duration
	ReclaimGrace    time.Duration
}

// Stats reports sweeper activity since start
type Stats struct {
	Runs            uint64
	Expired         uint64
	Reclaimed       uint64
	ReleasedLockers uint64
	Failed          uint64
	LastRunAt       time.Time
	LastReclaimAt   time.Time
}

// ExpirySweeper periodically moves overdue sessions to Expired. It runs once
// on start, reclaiming abandoned sessions first so a restart with stale state
// is repaired immediately, then sweeps on every tick.
type ExpirySweeper struct {
	engine       Engine
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config

	mu     sync.Mutex
	stats  Stats
	cancel context.CancelFunc
	done   chan struct{}
}

// NewExpirySweeper creates a sweeper; zero config values fall back to 60s
// ticks, hourly reclaim and a 24h grace period
func NewExpirySweeper(engine Engine, timeProvider coreport.TimeProvider, logger coreport.Logger, cfg Config) *ExpirySweeper {
	if cfg.Interval <= 0 {
		cfg.Interval = 60 * time.Second
	}
	if cfg.ReclaimInterval <= 0 {
		cfg.ReclaimInterval = time.Hour
	}
	if cfg.ReclaimGrace <= 0 {
		cfg.ReclaimGrace = 24 * time.Hour
	}
	return &ExpirySweeper{
		engine:       engine,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// Start runs the sweeper in a background goroutine until Stop or ctx is done
func (w *ExpirySweeper) Start(ctx context.Context) {
	w.mu.Lock()
	if w.done != nil {
		w.mu.Unlock()
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.done = make(chan struct{})
	done := w.done
	w.mu.Unlock()

	go func() {
		defer close(done)
		w.Run(runCtx)
	}()
}

// Stop cancels the background loop and waits for the current pass to finish
func (w *ExpirySweeper) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Run blocks until ctx is done
func (w *ExpirySweeper) Run(ctx context.Context) {
	ticker := w.timeProvider.NewTicker(coreport.Duration(w.cfg.Interval))
	defer ticker.Stop()

	w.logger.Info("Expiry sweeper started", map[string]any{
		"interval":         w.cfg.Interval.String(),
		"reclaim_interval": w.cfg.ReclaimInterval.String(),
		"reclaim_grace":    w.cfg.ReclaimGrace.String(),
	})

	w.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Expiry sweeper stopped", nil)
			return
		case <-ticker.C():
			w.RunOnce(ctx)
		}
	}
}

// RunOnce performs one pass: the coarse reclaim when it is due, then the sweep
func (w *ExpirySweeper) RunOnce(ctx context.Context) {
	now := w.timeProvider.Now()

	w.mu.Lock()
	reclaimDue := w.stats.LastReclaimAt.IsZero() || now.Sub(w.stats.LastReclaimAt) >= w.cfg.ReclaimInterval
	w.mu.Unlock()

	if reclaimDue {
		res, err := w.engine.ReclaimAbandoned(ctx, now, w.cfg.ReclaimGrace)
		w.mu.Lock()
		w.stats.LastReclaimAt = now
		if res != nil {
			w.stats.Reclaimed += uint64(len(res.Expired))
			w.stats.ReleasedLockers += uint64(len(res.ReleasedLockers))
			w.stats.Failed += uint64(res.Failed)
		}
		w.mu.Unlock()
		if err != nil {
			w.logger.Error("Reclaim pass failed", map[string]any{"error": err.Error()})
		}
	}

	res, err := w.engine.SweepExpired(ctx, now)
	w.mu.Lock()
	w.stats.Runs++
	w.stats.LastRunAt = now
	if res != nil {
		w.stats.Expired += uint64(len(res.Expired))
		w.stats.Failed += uint64(res.Failed)
	}
	w.mu.Unlock()
	if err != nil {
		w.logger.Error("Expiry sweep failed", map[string]any{"error": err.Error()})
	}
}

// Stats returns a copy of the counters
func (w *ExpirySweeper) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}
