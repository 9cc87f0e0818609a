package server

import (
	"log/slog"

	"github.com/preston-bernstein/mlb-scoreboard/internal/config"
	"github.com/preston-bernstein/mlb-scoreboard/internal/metrics"
	"github.com/preston-bernstein/mlb-scoreboard/internal/providers"
)

// providerFactory assembles the provider with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg *config.Config) providers.ScheduleProvider {
	return f.wrap(selectProvider(cfg), cfg.Provider)
}

func (f providerFactory) wrap(base providers.ScheduleProvider, configured string) providers.ScheduleProvider {
	return providers.NewInstrumentedProvider(base, normalizeProviderName(configured, base), f.logger, f.metrics)
}
