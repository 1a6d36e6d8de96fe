package validate

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	clockLayout = "15:04:05"
)

// ParseDate parses a calendar date in YYYY-MM-DD form. Order dates and
// report ranges are dates, never timestamps.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return d, nil
}

// ParseClock validates a time-of-day value and normalizes it to HH:MM:SS so
// clock strings compare correctly as plain strings.
func ParseClock(s string) (string, error) {
	if t, err := time.Parse(clockLayout, s); err == nil {
		return t.Format(clockLayout), nil
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return t.Format(clockLayout), nil
	}
	return "", fmt.Errorf("invalid time %q: expected HH:MM or HH:MM:SS", s)
}
