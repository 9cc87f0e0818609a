package server

import (
	"github.com/preston-bernstein/mlb-scoreboard/internal/config"
	"github.com/preston-bernstein/mlb-scoreboard/internal/providers"
	"github.com/preston-bernstein/mlb-scoreboard/internal/providers/fixture"
	"github.com/preston-bernstein/mlb-scoreboard/internal/providers/statsapi"
)

// selectProvider builds the configured provider. Config.Validate admits only
// statsapi and fixture, so anything but fixture is the Stats API.
func selectProvider(cfg *config.Config) providers.ScheduleProvider {
	if cfg.Provider == config.ProviderFixture {
		return fixture.New()
	}
	return statsapi.NewClient(statsapi.Config{
		BaseURL:  cfg.StatsAPI.BaseURL,
		SportID:  cfg.StatsAPI.SportID,
		Timezone: cfg.Timezone,
		Timeout:  cfg.StatsAPI.Timeout,
	})
}
