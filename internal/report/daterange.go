// Package report filters the submission ledger by date and writes exports.
package report

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Bounds used when one side of the filter is left empty.
var (
	defaultStart = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	defaultEnd   = time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
)

// DateRange is an inclusive day range. end is stored as the first instant
// after the last included day.
type DateRange struct {
	start time.Time
	end   time.Time
}

// ParseDateRange reads YYYY-MM-DD bounds in loc. Empty start means 2000-01-01,
// empty end means 2100-01-01.
func ParseDateRange(start, end string, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.UTC
	}
	s, err := parseDay(start, defaultStart, loc)
	if err != nil {
		return DateRange{}, fmt.Errorf("start date: %w", err)
	}
	e, err := parseDay(end, defaultEnd, loc)
	if err != nil {
		return DateRange{}, fmt.Errorf("end date: %w", err)
	}
	return DateRange{start: s, end: e.AddDate(0, 0, 1)}, nil
}

func parseDay(v string, fallback time.Time, loc *time.Location) (time.Time, error) {
	if v == "" {
		return time.Date(fallback.Year(), fallback.Month(), fallback.Day(), 0, 0, 0, 0, loc), nil
	}
	return time.ParseInLocation(dateLayout, v, loc)
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.start) && t.Before(r.end)
}

func (r DateRange) Start() time.Time { return r.start }

// End is the last included day at midnight.
func (r DateRange) End() time.Time { return r.end.AddDate(0, 0, -1) }
