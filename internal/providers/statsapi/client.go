package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/preston-bernstein/mlb-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/mlb-scoreboard/internal/providers"
	"github.com/preston-bernstein/mlb-scoreboard/internal/timeutil"
)

// Config controls how the client reaches the MLB Stats API.
type Config struct {
	BaseURL    string
	SportID    int
	Timezone   string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches the daily schedule from the MLB Stats API.
type Client struct {
	baseURL    string
	sportID    int
	httpClient httpDoer
	now        func() time.Time
	loc        *time.Location
}

// NewClient constructs a statsapi client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		sportID:    resolveSportID(cfg.SportID),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
		loc:        resolveLocation(cfg.Timezone),
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// FetchGames retrieves the games scheduled for date (MM/DD/YYYY), or for today when date is empty.
// Every failure is returned as a *providers.FetchError; nothing is retried.
func (c *Client) FetchGames(ctx context.Context, date string) ([]games.GameRecord, error) {
	req, err := c.buildRequest(ctx, date)
	if err != nil {
		return nil, providers.NewTransportError(providerName, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, providers.NewTransportError(providerName, unwrapURLError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, providers.NewStatusError(providerName, resp.StatusCode)
	}

	var payload scheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, providers.NewTransportError(providerName, fmt.Errorf("decode schedule: %w", err))
	}

	return payload.firstDateGames(), nil
}

// ResolveDate returns date when it is a valid MM/DD/YYYY string, otherwise today's date.
func (c *Client) ResolveDate(date string) string {
	if date != "" && timeutil.IsDate(date) {
		return date
	}
	return timeutil.Today(c.now(), c.loc)
}

func (c *Client) buildRequest(ctx context.Context, date string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+schedulePath, nil)
	if err != nil {
		return nil, err
	}

	// The upstream documents the date with literal slashes; the resolved date is always MM/DD/YYYY.
	req.URL.RawQuery = "sportId=" + strconv.Itoa(c.sportID) + "&date=" + c.ResolveDate(date)
	req.Header.Set("Accept", "application/json")

	return req, nil
}
