// Package dateutil keeps the booking core timezone-naive: calendar dates and
// times-of-day travel as validated strings and never become timestamps, so no
// implicit timezone conversion can shift them.
package dateutil

import (
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// ParseDate validates s as a YYYY-MM-DD calendar date.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}

// ParseTime validates s as a time of day and normalizes it to HH:MM:SS.
// HH:MM is accepted because the booking UI sends minute granularity.
func ParseTime(s string) (string, error) {
	if t, err := time.Parse(TimeLayout, s); err == nil {
		return t.Format(TimeLayout), nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return "", err
	}
	return t.Format(TimeLayout), nil
}

// Today returns the current calendar date in UTC. Availability filtering is
// defined against UTC dates, independent of the server's local zone.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}
