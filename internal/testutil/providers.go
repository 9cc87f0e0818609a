package testutil

import (
	"context"

	"github.com/preston-bernstein/mlb-scoreboard/internal/domain/games"
)

// GoodProvider returns the provided games with no error.
type GoodProvider struct {
	Games []games.GameRecord
}

func (p GoodProvider) FetchGames(ctx context.Context, date string) ([]games.GameRecord, error) {
	_ = ctx
	_ = date
	return p.Games, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchGames(ctx context.Context, date string) ([]games.GameRecord, error) {
	return nil, p.Err
}

// EmptyProvider returns no games, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchGames(ctx context.Context, date string) ([]games.GameRecord, error) {
	return []games.GameRecord{}, nil
}
