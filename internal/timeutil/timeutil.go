package timeutil

import (
	"time"
	// Embedded zone data keeps Pacific-time resolution working on hosts without tzdata.
	_ "time/tzdata"
)

// DateLayout is the schedule date format (MM/DD/YYYY).
const DateLayout = "01/02/2006"

// DefaultTimezone anchors "today" for schedule lookups.
const DefaultTimezone = "America/Los_Angeles"

// ParseDate parses an MM/DD/YYYY date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as MM/DD/YYYY in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsDate reports whether value is a well-formed MM/DD/YYYY date.
func IsDate(value string) bool {
	_, err := ParseDate(value)
	return err == nil
}

// Today returns now's calendar date in loc, formatted MM/DD/YYYY.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return FormatDate(now.In(loc))
}

// LoadLocation resolves a timezone name, using DefaultTimezone when name is empty.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}
	return time.LoadLocation(name)
}
