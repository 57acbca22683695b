package commands

import (
	"context"
	"time"
)

type BorrowingCreated struct {
	BookUnitID int64
}

type EventPublisher interface {
	PublishBorrowingCreated(ctx context.Context, ev BorrowingCreated) error
}

type AuditEntry struct {
	Action     string
	BorrowerID int64
	BookUnitID int64
	StartDate  time.Time
	EndDate    time.Time
}

type AuditLogger interface {
	Record(ctx context.Context, entry AuditEntry) error
}
