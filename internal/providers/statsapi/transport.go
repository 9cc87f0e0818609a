package statsapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/mlb-scoreboard/internal/timeutil"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveLocation(name string) *time.Location {
	if loc, err := timeutil.LoadLocation(name); err == nil {
		return loc
	}
	if loc, err := timeutil.LoadLocation(""); err == nil {
		return loc
	}
	return time.UTC
}

func resolveSportID(id int) int {
	if id <= 0 {
		return defaultSportID
	}
	return id
}
