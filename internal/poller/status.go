package poller

import (
	"errors"
	"sync"
	"time"

	"github.com/preston-bernstein/mlb-scoreboard/internal/scoreboard"
)

const readyFailureThreshold = 3

// Status describes the recent health of a refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether there has been a success and failures are not piling up.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < readyFailureThreshold
}

// Tracker accumulates Status from refresh outcomes.
type Tracker struct {
	mu     sync.RWMutex
	status Status
}

// RecordAttempt notes the start of an attempt.
func (t *Tracker) RecordAttempt(at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.LastAttempt = at
}

// RecordSuccess resets the failure streak.
func (t *Tracker) RecordSuccess(at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.ConsecutiveFailures = 0
	t.status.LastError = ""
	t.status.LastSuccess = at
}

// RecordFailure extends the failure streak.
func (t *Tracker) RecordFailure(err error, at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.ConsecutiveFailures++
	if err != nil {
		t.status.LastError = err.Error()
	}
	t.status.LastAttempt = at
}

// Observe folds a finished scoreboard refresh into the status.
func (t *Tracker) Observe(snap scoreboard.Snapshot) {
	at := snap.UpdatedAt
	if at.IsZero() {
		at = time.Now()
	}
	switch snap.State {
	case scoreboard.StateLoaded:
		t.RecordAttempt(at)
		t.RecordSuccess(at)
	case scoreboard.StateFailed:
		t.RecordFailure(errors.New(snap.Error), at)
	}
}

// Status returns a copy of the current status.
func (t *Tracker) Status() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}
