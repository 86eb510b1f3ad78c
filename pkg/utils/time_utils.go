package utils

import (
	"fmt"
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses a calendar date in the "2006-01-02" wire format.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// DaysBetween returns the number of 24h periods between two dates,
// rounded up. Used to derive a trip duration when the client supplies
// an end date but no duration.
func DaysBetween(start, end string) (int, error) {
	s, err := ParseDate(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return 0, err
	}
	return int(math.Ceil(e.Sub(s).Hours() / 24)), nil
}
