package statsapi

import "github.com/preston-bernstein/mlb-scoreboard/internal/domain/games"

type scheduleResponse struct {
	TotalGames int            `json:"totalGames"`
	Dates      []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string             `json:"date"`
	Games []games.GameRecord `json:"games"`
}

// firstDateGames returns the games of the first listed date; an absent date means no games.
func (r scheduleResponse) firstDateGames() []games.GameRecord {
	if len(r.Dates) == 0 || r.Dates[0].Games == nil {
		return []games.GameRecord{}
	}
	return r.Dates[0].Games
}
