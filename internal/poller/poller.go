package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/mlb-scoreboard/internal/logging"
	"github.com/preston-bernstein/mlb-scoreboard/internal/metrics"
)

const defaultInterval = 5 * time.Minute

// Refresher is anything that can be asked to reload its data.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Poller triggers every refresher on an interval.
type Poller struct {
	refreshers []Refresher
	logger     *slog.Logger
	metrics    *metrics.Recorder
	interval   time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool
}

// New constructs a Poller; a non-positive interval uses the default.
func New(refreshers []Refresher, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		refreshers: refreshers,
		logger:     logger,
		metrics:    recorder,
		interval:   interval,
		done:       make(chan struct{}),
	}
}

// Start polls until the context is cancelled or Stop is called. The first cycle runs after one interval.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) refreshOnce(ctx context.Context) {
	start := time.Now()

	var errs []error
	for _, r := range p.refreshers {
		if err := r.Refresh(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	err := errors.Join(errs...)
	p.metrics.RecordPollerCycle(time.Since(start), err)

	if err != nil {
		logging.Error(p.logger, "poller refresh failed", err,
			slog.Int(logging.FieldCount, len(errs)),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		return
	}
	logging.Info(p.logger, "poller refreshed scoreboards",
		slog.Int(logging.FieldCount, len(p.refreshers)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

// Interval reports the configured tick interval.
func (p *Poller) Interval() time.Duration {
	return p.interval
}
