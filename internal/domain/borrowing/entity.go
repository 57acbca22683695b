package borrowing

import (
	"errors"
	"time"

	"borrowing-service/internal/pkg/dates"
)

var (
	ErrInvalidUserID         = errors.New("user id must be positive")
	ErrInvalidBookUnitID     = errors.New("book unit id must be positive")
	ErrBlankShippingAddress  = errors.New("shipping address cannot be blank")
	ErrShippingAddressLength = errors.New("shipping address must be between 10 and 100 characters")
	ErrMissingStartDate      = errors.New("start date cannot be empty")
	ErrMissingEndDate        = errors.New("end date cannot be empty")
	ErrEndNotAfterStart      = errors.New("end date must be after start date")
	ErrStartInPast           = errors.New("start date must be today or in the future")
)

type Borrowing struct {
	id              int64
	userID          int64
	bookUnitID      int64
	shippingAddress ShippingAddress
	period          Period
	active          bool
	createdAt       time.Time
}

// NewBorrowing validates a new, not yet persisted borrowing. It starts active and
// carries today's date as creation date; the id is assigned by the store.
func NewBorrowing(userID, bookUnitID int64, address string, start, end, now time.Time) (*Borrowing, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}
	if bookUnitID <= 0 {
		return nil, ErrInvalidBookUnitID
	}

	addr, err := NewShippingAddress(address)
	if err != nil {
		return nil, err
	}

	period, err := NewPeriod(start, end)
	if err != nil {
		return nil, err
	}
	today := dates.Today(now)
	if period.StartsBefore(today) {
		return nil, ErrStartInPast
	}

	return &Borrowing{
		userID:          userID,
		bookUnitID:      bookUnitID,
		shippingAddress: addr,
		period:          period,
		active:          true,
		createdAt:       today,
	}, nil
}

// ReconstructBorrowing rebuilds a stored borrowing without re-running creation rules.
func ReconstructBorrowing(
	id, userID, bookUnitID int64,
	address string,
	start, end time.Time,
	active bool,
	createdAt time.Time,
) *Borrowing {
	return &Borrowing{
		id:              id,
		userID:          userID,
		bookUnitID:      bookUnitID,
		shippingAddress: ShippingAddress{text: address},
		period:          Period{start: dates.Day(start), end: dates.Day(end)},
		active:          active,
		createdAt:       dates.Day(createdAt),
	}
}

func (b *Borrowing) IsPersisted() bool { return b.id != 0 }

// IsExpired reports whether the borrowing is closed and ended before cutoff.
func (b *Borrowing) IsExpired(cutoff time.Time) bool {
	return !b.active && b.period.End().Before(dates.Day(cutoff))
}

func (b *Borrowing) ID() int64                        { return b.id }
func (b *Borrowing) UserID() int64                    { return b.userID }
func (b *Borrowing) BookUnitID() int64                { return b.bookUnitID }
func (b *Borrowing) ShippingAddress() ShippingAddress { return b.shippingAddress }
func (b *Borrowing) Period() Period                   { return b.period }
func (b *Borrowing) StartDate() time.Time             { return b.period.Start() }
func (b *Borrowing) EndDate() time.Time               { return b.period.End() }
func (b *Borrowing) IsActive() bool                   { return b.active }
func (b *Borrowing) CreatedAt() time.Time             { return b.createdAt }
