package shared

import (
	"context"
	"time"
)

// BorrowingRecord is the persisted shape of a borrowing. The shipping address is
// only ever held here in its encrypted form.
type BorrowingRecord struct {
	ID                       int64
	UserID                   int64
	BookUnitID               int64
	EncryptedShippingAddress string
	StartDate                time.Time
	EndDate                  time.Time
	Active                   bool
	CreatedAt                time.Time
}

type BorrowingRepository interface {
	Save(ctx context.Context, rec BorrowingRecord) (BorrowingRecord, error)
	FindByID(ctx context.Context, id int64) (BorrowingRecord, error)
	FindByUserID(ctx context.Context, userID int64) ([]BorrowingRecord, error)
	FindByUserIDAndActive(ctx context.Context, userID int64, active bool) ([]BorrowingRecord, error)
	FindByBookUnitID(ctx context.Context, bookUnitID int64) ([]BorrowingRecord, error)
	// FindExpiredInactive returns inactive records whose end date lies strictly before cutoff.
	FindExpiredInactive(ctx context.Context, cutoff time.Time) ([]BorrowingRecord, error)
	Delete(ctx context.Context, id int64) error
}
