package testutil

import (
	"time"

	"github.com/preston-bernstein/mlb-scoreboard/internal/providers"
	"github.com/preston-bernstein/mlb-scoreboard/internal/scoreboard"
)

// NewScoreboard builds a quiet scoreboard pinned to a fixed date.
func NewScoreboard(surface string, provider providers.ScheduleProvider) *scoreboard.Scoreboard {
	return scoreboard.New(scoreboard.Config{Surface: surface, Location: time.UTC, Date: "04/01/2025"}, provider, nil, nil)
}
