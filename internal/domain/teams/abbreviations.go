package teams

import (
	"sort"
	"strings"
)

const fallbackLength = 3

// abbreviations maps full club names to their display codes. Lookups are exact and case-sensitive.
var abbreviations = map[string]string{
	"Arizona Diamondbacks":  "ARI",
	"Atlanta Braves":        "ATL",
	"Baltimore Orioles":     "BAL",
	"Boston Red Sox":        "BOS",
	"Chicago Cubs":          "CHC",
	"Chicago White Sox":     "CWS",
	"Cincinnati Reds":       "CIN",
	"Cleveland Guardians":   "CLE",
	"Colorado Rockies":      "COL",
	"Detroit Tigers":        "DET",
	"Houston Astros":        "HOU",
	"Kansas City Royals":    "KC",
	"Los Angeles Angels":    "LAA",
	"Los Angeles Dodgers":   "LAD",
	"Miami Marlins":         "MIA",
	"Milwaukee Brewers":     "MIL",
	"Minnesota Twins":       "MIN",
	"New York Mets":         "NYM",
	"New York Yankees":      "NYY",
	"Oakland Athletics":     "OAK",
	"Athletics":             "OAK",
	"Philadelphia Phillies": "PHI",
	"Pittsburgh Pirates":    "PIT",
	"San Diego Padres":      "SD",
	"San Francisco Giants":  "SF",
	"Seattle Mariners":      "SEA",
	"St. Louis Cardinals":   "STL",
	"Tampa Bay Rays":        "TB",
	"Texas Rangers":         "TEX",
	"Toronto Blue Jays":     "TOR",
	"Washington Nationals":  "WSH",
}

// Abbreviate returns the display code for a club name.
// Unknown names fall back to their first three characters upper-cased.
func Abbreviate(name string) string {
	if code, ok := Lookup(name); ok {
		return code
	}
	runes := []rune(name)
	if len(runes) > fallbackLength {
		runes = runes[:fallbackLength]
	}
	return strings.ToUpper(string(runes))
}

// Lookup reports the configured code for a club name without falling back.
func Lookup(name string) (string, bool) {
	code, ok := abbreviations[name]
	return code, ok
}

// Known lists every club name in the table, sorted.
func Known() []string {
	names := make([]string, 0, len(abbreviations))
	for name := range abbreviations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
