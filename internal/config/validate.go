package config

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/mlb-scoreboard/internal/timeutil"
)

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("%w: port must not be empty", ErrInvalidConfig)
	}
	if c.GameDate != "" && !timeutil.IsDate(c.GameDate) {
		return fmt.Errorf("%w: game_date %q is not MM/DD/YYYY", ErrInvalidConfig, c.GameDate)
	}
	if _, err := timeutil.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("%w: timezone %q: %v", ErrInvalidConfig, c.Timezone, err)
	}
	switch c.Provider {
	case ProviderStatsAPI, ProviderFixture:
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, c.Provider)
	}
	if c.RefreshInterval < 0 {
		return fmt.Errorf("%w: refresh_interval must not be negative", ErrInvalidConfig)
	}
	if c.StatsAPI.SportID <= 0 {
		return fmt.Errorf("%w: statsapi.sport_id must be positive", ErrInvalidConfig)
	}
	return nil
}
