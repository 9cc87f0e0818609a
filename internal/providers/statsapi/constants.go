package statsapi

import "time"

const (
	providerName       = "statsapi"
	defaultBaseURL     = "https://statsapi.mlb.com/api/v1"
	defaultSportID     = 1
	defaultHTTPTimeout = 10 * time.Second
	schedulePath       = "/schedule/games/"
)
