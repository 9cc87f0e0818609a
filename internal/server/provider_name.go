package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/mlb-scoreboard/internal/providers"
)

// normalizeProviderName returns a lower-cased provider name, preferring the configured value,
// then the provider's own Name, then its type.
func normalizeProviderName(raw string, provider providers.ScheduleProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if named, ok := provider.(interface{ Name() string }); ok {
		return strings.ToLower(named.Name())
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
