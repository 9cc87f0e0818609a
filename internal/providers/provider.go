package providers

import (
	"context"

	"github.com/preston-bernstein/mlb-scoreboard/internal/domain/games"
)

// ScheduleProvider fetches the games scheduled for a date.
// The date, when provided, is an MM/DD/YYYY string; providers interpret an empty
// date as "today" in their configured timezone.
type ScheduleProvider interface {
	FetchGames(ctx context.Context, date string) ([]games.GameRecord, error)
}
