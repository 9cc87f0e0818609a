package testutil

import (
	"github.com/preston-bernstein/mlb-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/mlb-scoreboard/internal/domain/teams"
)

// SampleGame returns a game between two clubs with the given scores; nil scores stay absent.
func SampleGame(pk int, away, home string, awayScore, homeScore *int, status string) games.GameRecord {
	return games.GameRecord{
		GamePk:   pk,
		GameDate: "2025-04-01T23:05:00Z",
		Teams: games.Matchup{
			Away: games.Side{Team: teams.Team{Name: away}, Score: awayScore},
			Home: games.Side{Team: teams.Team{Name: home}, Score: homeScore},
		},
		Status: games.Status{AbstractGameState: "Final", DetailedState: status},
	}
}

// YankeesAtRedSox is the final used across handler and server tests: NYY 5 - 3 BOS at Fenway Park.
func YankeesAtRedSox() games.GameRecord {
	g := SampleGame(1, "New York Yankees", "Boston Red Sox", games.IntPtr(5), games.IntPtr(3), "Final")
	g.Venue = &games.Venue{ID: 3, Name: "Fenway Park"}
	return g
}
