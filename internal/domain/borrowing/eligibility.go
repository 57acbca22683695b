package borrowing

import (
	"errors"
	"time"

	"borrowing-service/internal/pkg/dates"
)

var (
	ErrNoActiveSubscription   = errors.New("no active subscription")
	ErrSubscriptionEndMissing = errors.New("subscription end date is missing")
	ErrSubscriptionEndsEarly  = errors.New("subscription does not cover the entire borrowing period")
)

// Subscription is the eligibility answer of the subscription service.
type Subscription struct {
	Active  bool
	EndDate *time.Time
}

// CoveredBy checks that sub is active and lasts at least until the period ends.
// A subscription ending on the same day as the period is sufficient.
func (p Period) CoveredBy(sub Subscription) error {
	if !sub.Active {
		return ErrNoActiveSubscription
	}
	if sub.EndDate == nil {
		return ErrSubscriptionEndMissing
	}
	if dates.Day(*sub.EndDate).Before(p.end) {
		return ErrSubscriptionEndsEarly
	}
	return nil
}
