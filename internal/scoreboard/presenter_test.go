package scoreboard

import (
	"strings"
	"testing"

	"github.com/preston-bernstein/mlb-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/mlb-scoreboard/internal/domain/teams"
)

func yankeesAtRedSox(away, home *int) games.GameRecord {
	return games.GameRecord{
		Teams: games.Matchup{
			Away: games.Side{Team: teams.Team{Name: "New York Yankees"}, Score: away},
			Home: games.Side{Team: teams.Team{Name: "Boston Red Sox"}, Score: home},
		},
		Status: games.Status{DetailedState: "Final"},
	}
}

func TestSummarizeFinalWithoutVenue(t *testing.T) {
	got := Summarize(yankeesAtRedSox(games.IntPtr(5), games.IntPtr(3)))

	if got.Label != "NYY 5 - 3 BOS" {
		t.Fatalf("unexpected label %q", got.Label)
	}
	if got.Description != "Final" {
		t.Fatalf("unexpected description %q", got.Description)
	}
	if got.Tooltip != "New York Yankees vs Boston Red Sox - Final" {
		t.Fatalf("unexpected tooltip %q", got.Tooltip)
	}
}

func TestSummarizeAppendsVenue(t *testing.T) {
	g := yankeesAtRedSox(games.IntPtr(5), games.IntPtr(3))
	g.Venue = &games.Venue{Name: "Fenway Park"}

	if got := Summarize(g).Description; got != "Final @Fenway Park" {
		t.Fatalf("unexpected description %q", got)
	}
}

func TestSummarizeEmptyVenueNameIsIgnored(t *testing.T) {
	g := yankeesAtRedSox(nil, nil)
	g.Venue = &games.Venue{}

	if got := Summarize(g).Description; got != "Final" {
		t.Fatalf("expected status only, got %q", got)
	}
}

func TestSummarizeMissingScoresRenderZero(t *testing.T) {
	got := Summarize(yankeesAtRedSox(nil, nil))

	if got.Label != "NYY 0 - 0 BOS" {
		t.Fatalf("unexpected label %q", got.Label)
	}
	for _, bad := range []string{"undefined", "null", "<nil>"} {
		if strings.Contains(got.Label, bad) {
			t.Fatalf("label must not contain %q: %q", bad, got.Label)
		}
	}
}

func TestSummarizeUnknownTeamsUseFallbackCodes(t *testing.T) {
	g := games.GameRecord{
		Teams: games.Matchup{
			Away: games.Side{Team: teams.Team{Name: "Unknown Team"}, Score: games.IntPtr(1)},
			Home: games.Side{Team: teams.Team{Name: "Ab"}, Score: games.IntPtr(0)},
		},
		Status: games.Status{DetailedState: "In Progress"},
	}

	if got := Summarize(g).Label; got != "UNK 1 - 0 AB" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestSummarizeAllPreservesOrder(t *testing.T) {
	records := []games.GameRecord{
		yankeesAtRedSox(games.IntPtr(1), games.IntPtr(2)),
		yankeesAtRedSox(games.IntPtr(3), games.IntPtr(4)),
		yankeesAtRedSox(games.IntPtr(5), games.IntPtr(6)),
	}

	got := SummarizeAll(records)
	want := []string{"NYY 1 - 2 BOS", "NYY 3 - 4 BOS", "NYY 5 - 6 BOS"}
	if len(got) != len(want) {
		t.Fatalf("expected %d summaries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Label != want[i] {
			t.Fatalf("summary %d: expected %q, got %q", i, want[i], got[i].Label)
		}
	}
}

func TestSummarizeAllEmpty(t *testing.T) {
	if got := SummarizeAll(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
