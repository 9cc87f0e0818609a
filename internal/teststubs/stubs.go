package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/mlb-scoreboard/internal/domain/games"
)

// StubProvider is a test double for providers.ScheduleProvider.
type StubProvider struct {
	Games  []games.GameRecord
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
	// Gate, when set, blocks each fetch until a value is received or ctx ends.
	Gate chan struct{}

	mu    sync.Mutex
	dates []string
}

// FetchGames returns configured games and error while tracking calls.
func (s *StubProvider) FetchGames(ctx context.Context, date string) ([]games.GameRecord, error) {
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	s.mu.Lock()
	s.dates = append(s.dates, date)
	s.mu.Unlock()

	if s.Gate != nil {
		select {
		case <-s.Gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Games, s.Err
}

// SetResult swaps the configured response under the stub's lock.
func (s *StubProvider) SetResult(records []games.GameRecord, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Games = records
	s.Err = err
}

// Dates returns the dates requested so far, in call order.
func (s *StubProvider) Dates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.dates))
	copy(out, s.dates)
	return out
}

// StubRefresher counts refresh triggers and returns Err.
type StubRefresher struct {
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}

	mu sync.Mutex
}

// Refresh records the call.
func (r *StubRefresher) Refresh(ctx context.Context) error {
	_ = ctx
	r.Calls.Add(1)
	if r.Notify != nil {
		select {
		case r.Notify <- struct{}{}:
		default:
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Err
}

// SetErr swaps the configured error under the stub's lock.
func (r *StubRefresher) SetErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Err = err
}
