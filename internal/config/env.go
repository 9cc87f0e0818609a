package config

import (
	"os"
	"strings"
)

// Standard OpenTelemetry variables seed the metrics defaults; file and
// MLB_SCOREBOARD_* settings still win.
const (
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
)

func applyOtelEnv(cfg *Config) {
	cfg.Metrics.OtlpEndpoint = envOrDefault(envOtelEndpoint, cfg.Metrics.OtlpEndpoint)
	cfg.Metrics.ServiceName = envOrDefault(envOtelService, cfg.Metrics.ServiceName)
	cfg.Metrics.OtlpInsecure = boolEnvOrDefault(envOtelInsecure, cfg.Metrics.OtlpInsecure)
}

func envOrDefault(key, defaultValue string) string {
	val := os.Getenv(key)
	if val != "" {
		return val
	}
	return defaultValue
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	if raw == "1" || strings.EqualFold(raw, "true") || strings.EqualFold(raw, "yes") {
		return true
	}
	if raw == "0" || strings.EqualFold(raw, "false") || strings.EqualFold(raw, "no") {
		return false
	}
	return defaultValue
}
