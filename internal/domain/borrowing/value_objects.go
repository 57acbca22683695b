package borrowing

import (
	"strings"
	"time"
	"unicode/utf8"

	"borrowing-service/internal/pkg/dates"
)

const (
	MinShippingAddressLength = 10
	MaxShippingAddressLength = 100
)

type ShippingAddress struct {
	text string
}

func NewShippingAddress(s string) (ShippingAddress, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return ShippingAddress{}, ErrBlankShippingAddress
	}
	if n := utf8.RuneCountInString(t); n < MinShippingAddressLength || n > MaxShippingAddressLength {
		return ShippingAddress{}, ErrShippingAddressLength
	}
	return ShippingAddress{text: t}, nil
}

func (a ShippingAddress) String() string { return a.text }

// Period is a borrowing window of calendar days; end is strictly after start.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if start.IsZero() {
		return Period{}, ErrMissingStartDate
	}
	if end.IsZero() {
		return Period{}, ErrMissingEndDate
	}
	s, e := dates.Day(start), dates.Day(end)
	if !e.After(s) {
		return Period{}, ErrEndNotAfterStart
	}
	return Period{start: s, end: e}, nil
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

// StartsBefore reports whether the period starts before the given day.
func (p Period) StartsBefore(day time.Time) bool {
	return p.start.Before(dates.Day(day))
}
