package providers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/preston-bernstein/mlb-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/mlb-scoreboard/internal/metrics"
)

type scriptedProvider struct {
	games []games.GameRecord
	err   error
	calls int
}

func (s *scriptedProvider) FetchGames(ctx context.Context, date string) ([]games.GameRecord, error) {
	_ = ctx
	_ = date
	s.calls++
	return s.games, s.err
}

func TestInstrumentedProviderRecordsSuccess(t *testing.T) {
	inner := &scriptedProvider{games: []games.GameRecord{{GamePk: 1}}}
	rec := metrics.NewRecorder()
	p := NewInstrumentedProvider(inner, "statsapi", nil, rec)

	got, err := p.FetchGames(context.Background(), "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 game, got %d", len(got))
	}
	if rec.ProviderCalls("statsapi") != 1 || rec.ProviderErrors("statsapi") != 0 {
		t.Fatalf("unexpected stats %+v", rec.Snapshot("statsapi"))
	}
}

func TestInstrumentedProviderDoesNotRetry(t *testing.T) {
	inner := &scriptedProvider{err: NewStatusError("statsapi", 503)}
	rec := metrics.NewRecorder()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	p := NewInstrumentedProvider(inner, "statsapi", logger, rec)

	_, err := p.FetchGames(context.Background(), "04/01/2025")
	if err == nil {
		t.Fatal("expected error")
	}
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError to pass through, got %T", err)
	}
	if inner.calls != 1 {
		t.Fatalf("expected a single upstream call, got %d", inner.calls)
	}
	if rec.ProviderErrors("statsapi") != 1 {
		t.Fatalf("expected error recorded")
	}
	if !strings.Contains(buf.String(), "status_code=503") {
		t.Fatalf("expected status code in log, got %q", buf.String())
	}
}
