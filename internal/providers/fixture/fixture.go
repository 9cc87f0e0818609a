package fixture

import (
	"context"
	"time"

	"github.com/preston-bernstein/mlb-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/mlb-scoreboard/internal/domain/teams"
	"github.com/preston-bernstein/mlb-scoreboard/internal/timeutil"
)

// Provider returns a static slate of games useful for local development and tests.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string {
	return "fixture"
}

// FetchGames returns a deterministic slate: a final with a venue, a game in progress
// without one, and a scheduled game with no scores yet.
func (p *Provider) FetchGames(ctx context.Context, date string) ([]games.GameRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	day := p.now().UTC().Truncate(24 * time.Hour)
	if date != "" {
		if parsed, err := timeutil.ParseDate(date); err == nil {
			day = parsed
		}
	}
	first := day.Add(17 * time.Hour)

	return []games.GameRecord{
		{
			GamePk:   1001,
			GameDate: first.Format(time.RFC3339),
			Teams: games.Matchup{
				Away: games.Side{Team: teams.Team{ID: 147, Name: "New York Yankees"}, Score: games.IntPtr(5)},
				Home: games.Side{Team: teams.Team{ID: 111, Name: "Boston Red Sox"}, Score: games.IntPtr(3)},
			},
			Status: games.Status{AbstractGameState: "Final", DetailedState: "Final"},
			Venue:  &games.Venue{ID: 3, Name: "Fenway Park"},
		},
		{
			GamePk:   1002,
			GameDate: first.Add(2 * time.Hour).Format(time.RFC3339),
			Teams: games.Matchup{
				Away: games.Side{Team: teams.Team{ID: 119, Name: "Los Angeles Dodgers"}, Score: games.IntPtr(2)},
				Home: games.Side{Team: teams.Team{ID: 137, Name: "San Francisco Giants"}, Score: games.IntPtr(4)},
			},
			Status: games.Status{AbstractGameState: "Live", DetailedState: "In Progress"},
		},
		{
			GamePk:   1003,
			GameDate: first.Add(4 * time.Hour).Format(time.RFC3339),
			Teams: games.Matchup{
				Away: games.Side{Team: teams.Team{ID: 133, Name: "Athletics"}},
				Home: games.Side{Team: teams.Team{ID: 136, Name: "Seattle Mariners"}},
			},
			Status: games.Status{AbstractGameState: "Preview", DetailedState: "Scheduled"},
			Venue:  &games.Venue{ID: 680, Name: "T-Mobile Park"},
		},
	}, nil
}
