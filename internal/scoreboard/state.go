package scoreboard

import (
	"time"

	"github.com/preston-bernstein/mlb-scoreboard/internal/domain/games"
)

// State is a step of the refresh lifecycle: idle, then loading, then loaded or failed.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateFailed  State = "failed"
)

// Snapshot is an immutable view of a scoreboard after a transition.
type Snapshot struct {
	Surface   string                 `json:"surface"`
	State     State                  `json:"state"`
	Date      string                 `json:"date"`
	Items     []games.DisplaySummary `json:"items"`
	Error     string                 `json:"error"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// Observer receives a snapshot every time a refresh finishes.
type Observer func(Snapshot)
