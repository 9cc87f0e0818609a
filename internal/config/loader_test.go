package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/preston-bernstein/mlb-scoreboard/internal/config"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scoreboard.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestConfigLoader_Defaults(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")

	convey.Convey("Given no file and no overrides", t, func() {
		cfg, err := config.Load(context.Background())

		convey.Convey("Then it should load the defaults", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Port, convey.ShouldEqual, "4000")
			convey.So(cfg.Provider, convey.ShouldEqual, config.ProviderStatsAPI)
			convey.So(cfg.StatsAPI.Timeout, convey.ShouldEqual, 10*time.Second)
		})
	})
}

func TestConfigLoader_FileThenEnv(t *testing.T) {
	path := writeConfigFile(t, `
port: "5000"
provider: fixture
game_date: "04/01/2025"
refresh_interval: 90s
statsapi:
  base_url: http://localhost:9999/api/v1
  timeout: 3s
metrics:
  enabled: false
cors:
  allowed_origins:
    - vscode-webview://host
`)
	t.Setenv(config.EnvConfigPath, path)
	t.Setenv("MLB_SCOREBOARD_PORT", "6000")
	t.Setenv("MLB_SCOREBOARD_STATSAPI_SPORT_ID", "11")
	t.Setenv("MLB_SCOREBOARD_METRICS_OTLP_ENDPOINT", "collector:4318")

	convey.Convey("Given a YAML file and env overrides", t, func() {
		cfg, err := config.Load(context.Background())

		convey.Convey("Then file values apply", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Provider, convey.ShouldEqual, config.ProviderFixture)
			convey.So(cfg.GameDate, convey.ShouldEqual, "04/01/2025")
			convey.So(cfg.RefreshInterval, convey.ShouldEqual, 90*time.Second)
			convey.So(cfg.StatsAPI.BaseURL, convey.ShouldEqual, "http://localhost:9999/api/v1")
			convey.So(cfg.StatsAPI.Timeout, convey.ShouldEqual, 3*time.Second)
			convey.So(cfg.Metrics.Enabled, convey.ShouldBeFalse)
			convey.So(cfg.CORS.AllowedOrigins, convey.ShouldResemble, []string{"vscode-webview://host"})
		})

		convey.Convey("Then env values win over the file", func() {
			convey.So(cfg.Port, convey.ShouldEqual, "6000")
			convey.So(cfg.StatsAPI.SportID, convey.ShouldEqual, 11)
			convey.So(cfg.Metrics.OtlpEndpoint, convey.ShouldEqual, "collector:4318")
		})

		convey.Convey("Then untouched defaults survive", func() {
			convey.So(cfg.Timezone, convey.ShouldEqual, "America/Los_Angeles")
			convey.So(cfg.Metrics.Port, convey.ShouldEqual, "9090")
		})
	})
}

func TestConfigLoader_EnvOriginList(t *testing.T) {
	t.Setenv("MLB_SCOREBOARD_CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("MLB_SCOREBOARD_REFRESH_INTERVAL", "30s")

	convey.Convey("Given comma-separated origins in the environment", t, func() {
		cfg, err := config.LoadFile(context.Background(), "")

		convey.Convey("Then each origin is its own entry", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.CORS.AllowedOrigins, convey.ShouldResemble, []string{"http://a.test", "http://b.test"})
		})

		convey.Convey("Then scalar settings are left as they were", func() {
			convey.So(cfg.RefreshInterval, convey.ShouldEqual, 30*time.Second)
		})
	})
}

func TestConfigLoader_OtelEnvSeedsMetrics(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "otel:4318")
	t.Setenv("OTEL_SERVICE_NAME", "scores")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "false")

	convey.Convey("Given standard OpenTelemetry variables", t, func() {
		cfg, err := config.Load(context.Background())

		convey.Convey("Then they seed the metrics settings", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Metrics.OtlpEndpoint, convey.ShouldEqual, "otel:4318")
			convey.So(cfg.Metrics.ServiceName, convey.ShouldEqual, "scores")
			convey.So(cfg.Metrics.OtlpInsecure, convey.ShouldBeFalse)
		})
	})
}

func TestConfigLoader_Errors(t *testing.T) {
	convey.Convey("Given broken inputs", t, func() {
		convey.Convey("When the file is missing", func() {
			_, err := config.LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))

			convey.Convey("Then it reports a load failure", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the file holds a malformed date", func() {
			path := writeConfigFile(t, "game_date: \"2025-04-01\"\n")
			_, err := config.LoadFile(context.Background(), path)

			convey.Convey("Then it reports invalid config", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := config.LoadFile(ctx, "")

			convey.Convey("Then it reports a load failure", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})
	})
}
