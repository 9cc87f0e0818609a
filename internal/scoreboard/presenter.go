package scoreboard

import (
	"strconv"
	"strings"

	"github.com/preston-bernstein/mlb-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/mlb-scoreboard/internal/domain/teams"
)

// Summarize renders a game as "{away} {awayRuns} - {homeRuns} {home}" with the status
// (and venue, when known) as its description.
func Summarize(game games.GameRecord) games.DisplaySummary {
	away := game.Teams.Away
	home := game.Teams.Home
	status := game.Status.DetailedState

	var label strings.Builder
	label.WriteString(teams.Abbreviate(away.Team.Name))
	label.WriteByte(' ')
	label.WriteString(strconv.Itoa(away.Runs()))
	label.WriteString(" - ")
	label.WriteString(strconv.Itoa(home.Runs()))
	label.WriteByte(' ')
	label.WriteString(teams.Abbreviate(home.Team.Name))

	description := status
	if venue := game.VenueName(); venue != "" {
		description += " @" + venue
	}

	return games.DisplaySummary{
		Label:       label.String(),
		Description: description,
		Tooltip:     away.Team.Name + " vs " + home.Team.Name + " - " + status,
	}
}

// SummarizeAll renders each game independently, preserving input order.
func SummarizeAll(records []games.GameRecord) []games.DisplaySummary {
	out := make([]games.DisplaySummary, 0, len(records))
	for _, g := range records {
		out = append(out, Summarize(g))
	}
	return out
}
