// Package config loads service configuration from defaults, an optional YAML
// file and MLB_SCOREBOARD_* environment variables, in that order of precedence.
package config

import (
	"time"

	"github.com/preston-bernstein/mlb-scoreboard/internal/timeutil"
)

const (
	ProviderStatsAPI = "statsapi"
	ProviderFixture  = "fixture"

	defaultPort            = "4000"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultStatsAPIBaseURL = "https://statsapi.mlb.com/api/v1"
	defaultSportID         = 1
	defaultStatsAPITimeout = 10 * time.Second
	defaultMetricsPort     = "9090"
	defaultServiceName     = "mlb-scoreboard"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port      string `koanf:"port"`
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	// Provider selects the schedule source: statsapi or fixture.
	Provider string `koanf:"provider"`

	// GameDate overrides "today" with a fixed MM/DD/YYYY date.
	GameDate string `koanf:"game_date"`
	Timezone string `koanf:"timezone"`

	// RefreshInterval enables periodic refreshes; zero leaves refreshes manual.
	RefreshInterval time.Duration `koanf:"refresh_interval"`

	StatsAPI StatsAPIConfig `koanf:"statsapi"`
	Metrics  MetricsConfig  `koanf:"metrics"`
	CORS     CORSConfig     `koanf:"cors"`
}

// StatsAPIConfig points the schedule client at the MLB Stats API.
type StatsAPIConfig struct {
	BaseURL string        `koanf:"base_url"`
	SportID int           `koanf:"sport_id"`
	Timeout time.Duration `koanf:"timeout"`
}

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool   `koanf:"enabled"`
	Port         string `koanf:"port"`
	OtlpEndpoint string `koanf:"otlp_endpoint"`
	OtlpInsecure bool   `koanf:"otlp_insecure"`
	ServiceName  string `koanf:"service_name"`
}

// CORSConfig lists origins allowed to call the API; empty allows any.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Port:      defaultPort,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
		Provider:  ProviderStatsAPI,
		Timezone:  timeutil.DefaultTimezone,
		StatsAPI: StatsAPIConfig{
			BaseURL: defaultStatsAPIBaseURL,
			SportID: defaultSportID,
			Timeout: defaultStatsAPITimeout,
		},
		Metrics: MetricsConfig{
			Enabled:      true,
			Port:         defaultMetricsPort,
			OtlpInsecure: true,
			ServiceName:  defaultServiceName,
		},
	}
}

// Location resolves the configured timezone, falling back to the default zone.
func (c *Config) Location() *time.Location {
	loc, err := timeutil.LoadLocation(c.Timezone)
	if err != nil {
		loc, _ = timeutil.LoadLocation("")
	}
	return loc
}
