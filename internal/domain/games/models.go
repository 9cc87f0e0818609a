package games

import "github.com/preston-bernstein/mlb-scoreboard/internal/domain/teams"

// Side is one club's half of a matchup. Score is nil until the upstream reports one.
type Side struct {
	Team  teams.Team `json:"team"`
	Score *int       `json:"score,omitempty"`
}

// Runs returns the reported score, treating an absent score as zero.
func (s Side) Runs() int {
	if s.Score == nil {
		return 0
	}
	return *s.Score
}

// Matchup pairs the away and home sides of a game.
type Matchup struct {
	Away Side `json:"away"`
	Home Side `json:"home"`
}

// Status carries the upstream lifecycle text, e.g. "Final" or "In Progress".
type Status struct {
	AbstractGameState string `json:"abstractGameState,omitempty"`
	DetailedState     string `json:"detailedState"`
}

// Venue is the ballpark a game is played in.
type Venue struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}

// GameRecord is one scheduled game as received from the schedule endpoint.
// Records are treated as read-only once fetched.
type GameRecord struct {
	GamePk   int     `json:"gamePk,omitempty"`
	GameDate string  `json:"gameDate,omitempty"`
	Teams    Matchup `json:"teams"`
	Status   Status  `json:"status"`
	Venue    *Venue  `json:"venue,omitempty"`
}

// VenueName returns the venue name or "" when the record has none.
func (g GameRecord) VenueName() string {
	if g.Venue == nil {
		return ""
	}
	return g.Venue.Name
}

// DisplaySummary is the rendered form of a game for a list entry or document row.
type DisplaySummary struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Tooltip     string `json:"tooltip,omitempty"`
}

// IntPtr is a small helper for building records with explicit scores.
func IntPtr(v int) *int {
	return &v
}
