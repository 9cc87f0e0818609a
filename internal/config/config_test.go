package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/preston-bernstein/mlb-scoreboard/internal/config"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Port, convey.ShouldEqual, "4000")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.Provider, convey.ShouldEqual, config.ProviderStatsAPI)
			convey.So(cfg.GameDate, convey.ShouldBeEmpty)
			convey.So(cfg.Timezone, convey.ShouldEqual, "America/Los_Angeles")
			convey.So(cfg.RefreshInterval, convey.ShouldEqual, time.Duration(0))
			convey.So(cfg.StatsAPI.BaseURL, convey.ShouldEqual, "https://statsapi.mlb.com/api/v1")
			convey.So(cfg.StatsAPI.SportID, convey.ShouldEqual, 1)
			convey.So(cfg.StatsAPI.Timeout, convey.ShouldEqual, 10*time.Second)
			convey.So(cfg.Metrics.Enabled, convey.ShouldBeTrue)
			convey.So(cfg.Metrics.Port, convey.ShouldEqual, "9090")
			convey.So(cfg.CORS.AllowedOrigins, convey.ShouldBeEmpty)
		})

		convey.Convey("Then the defaults should validate", func() {
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("Then the location should be Pacific time", func() {
			convey.So(cfg.Location().String(), convey.ShouldEqual, "America/Los_Angeles")
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given configs with a single bad setting", t, func() {
		cases := map[string]func(*config.Config){
			"empty port":        func(c *config.Config) { c.Port = " " },
			"malformed date":    func(c *config.Config) { c.GameDate = "2025-04-01" },
			"impossible date":   func(c *config.Config) { c.GameDate = "13/45/2025" },
			"unknown timezone":  func(c *config.Config) { c.Timezone = "Mars/Olympus_Mons" },
			"unknown provider":  func(c *config.Config) { c.Provider = "espn" },
			"negative interval": func(c *config.Config) { c.RefreshInterval = -time.Second },
			"zero sport id":     func(c *config.Config) { c.StatsAPI.SportID = 0 },
		}

		for name, mutate := range cases {
			cfg := config.New()
			mutate(cfg)
			err := cfg.Validate()

			convey.Convey("Then "+name+" should be rejected as invalid config", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		}

		convey.Convey("Then a well-formed date override should pass", func() {
			cfg := config.New()
			cfg.GameDate = "04/01/2025"
			cfg.Provider = config.ProviderFixture
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_LocationFallsBack(t *testing.T) {
	convey.Convey("Given an unknown timezone", t, func() {
		cfg := config.New()
		cfg.Timezone = "Nowhere/Special"

		convey.Convey("Then Location falls back to the default zone", func() {
			convey.So(cfg.Location().String(), convey.ShouldEqual, "America/Los_Angeles")
		})
	})
}
