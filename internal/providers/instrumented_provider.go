package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/mlb-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/mlb-scoreboard/internal/logging"
	"github.com/preston-bernstein/mlb-scoreboard/internal/metrics"
)

// instrumentedProvider records latency and outcome for every fetch. It never retries.
type instrumentedProvider struct {
	inner   ScheduleProvider
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewInstrumentedProvider wraps a provider with logging and metrics.
func NewInstrumentedProvider(inner ScheduleProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) ScheduleProvider {
	return &instrumentedProvider{
		inner:   inner,
		name:    name,
		logger:  logger,
		metrics: recorder,
	}
}

func (p *instrumentedProvider) FetchGames(ctx context.Context, date string) ([]games.GameRecord, error) {
	start := time.Now()
	records, err := p.inner.FetchGames(ctx, date)
	elapsed := time.Since(start)
	p.metrics.RecordProviderAttempt(p.name, elapsed, err)

	logger := logging.FromContext(ctx, p.logger)
	if err != nil {
		args := []any{slog.String(logging.FieldDate, date), slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()), "error", err}
		if fe, ok := AsFetchError(err); ok && fe.StatusCode > 0 {
			args = append(args, slog.Int(logging.FieldStatusCode, fe.StatusCode))
		}
		logWithProvider(ctx, logger, slog.LevelWarn, p.name, "provider fetch failed", args...)
		return nil, err
	}

	logWithProvider(ctx, logger, slog.LevelDebug, p.name, "provider fetch complete",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(records)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return records, nil
}
