package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("statsapi", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("statsapi", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("statsapi"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("statsapi"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("statsapi"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("statsapi")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRefreshesPerSurface(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRefresh("tree", 5*time.Millisecond, nil)
	rec.RecordRefresh("tree", 7*time.Millisecond, errors.New("down"))
	rec.RecordRefresh("panel", time.Millisecond, nil)

	tree := rec.Refreshes("tree")
	if tree.Refreshes != 2 || tree.Failures != 1 || tree.LastLatency != 7*time.Millisecond {
		t.Fatalf("unexpected tree stats %+v", tree)
	}
	if panel := rec.Refreshes("panel"); panel.Refreshes != 1 || panel.Failures != 0 {
		t.Fatalf("unexpected panel stats %+v", panel)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("x", time.Millisecond, nil)
	rec.RecordRefresh("tree", time.Millisecond, nil)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordPollerCycle(time.Millisecond, nil)
	if rec.ProviderCalls("x") != 0 || rec.Refreshes("tree").Refreshes != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
}

func TestSnapshotUnknownProvider(t *testing.T) {
	if snap := NewRecorder().Snapshot("missing"); snap != (Snapshot{}) {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}
