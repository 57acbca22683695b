// Package dates handles calendar dates carried as time.Time values at UTC midnight.
package dates

import (
	"time"
)

const Layout = "2006-01-02"

// Day drops the clock part of t, keeping the calendar date as seen in t's location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Today(now time.Time) time.Time {
	return Day(now)
}

func AddDays(day time.Time, n int) time.Time {
	return Day(day).AddDate(0, 0, n)
}

func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, time.UTC)
}

func Format(day time.Time) string {
	return day.Format(Layout)
}

func ParsePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := Parse(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
