package server

import (
	"context"

	"github.com/preston-bernstein/mlb-scoreboard/internal/scoreboard"
)

// Poller defines the minimal poller behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
}

// configWatcher is the file watcher seen by the server.
type configWatcher interface {
	Start() error
	Stop() error
}

// openedRefresher refreshes the document surface only after it has been opened.
type openedRefresher struct {
	sb *scoreboard.Scoreboard
}

func (r openedRefresher) Refresh(ctx context.Context) error {
	return refreshIfOpened(ctx, r.sb)
}

func refreshIfOpened(ctx context.Context, sb *scoreboard.Scoreboard) error {
	if sb.Snapshot().State == scoreboard.StateIdle {
		return nil
	}
	return sb.Refresh(ctx)
}
