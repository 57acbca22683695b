//go:build unit || e2e

package builder

import (
	"time"

	"borrowing-service/internal/domain/borrowing"
	reqdto "borrowing-service/internal/handler/dto/request"
	"borrowing-service/internal/pkg/dates"
	"borrowing-service/internal/usecase/commands"
	"borrowing-service/internal/usecase/queries"
	"borrowing-service/internal/usecase/shared"
)

type BorrowingBuilder struct {
	ID              int64
	UserID          int64
	BookUnitID      int64
	ShippingAddress string
	StartDate       time.Time
	EndDate         time.Time
	Active          bool
	Now             time.Time
}

func NewBorrowingBuilder() *BorrowingBuilder {
	now := time.Now().UTC()
	today := dates.Today(now)
	return &BorrowingBuilder{
		ID:              1,
		UserID:          1001,
		BookUnitID:      2002,
		ShippingAddress: "742 Evergreen Terrace, Springfield",
		StartDate:       dates.AddDays(today, 1),
		EndDate:         dates.AddDays(today, 15),
		Active:          true,
		Now:             now,
	}
}

func (b *BorrowingBuilder) With(mutate func(*BorrowingBuilder)) *BorrowingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BorrowingBuilder) BuildDomain() (*borrowing.Borrowing, error) {
	return borrowing.NewBorrowing(b.UserID, b.BookUnitID, b.ShippingAddress, b.StartDate, b.EndDate, b.Now)
}

func (b *BorrowingBuilder) BuildPersisted() *borrowing.Borrowing {
	return borrowing.ReconstructBorrowing(b.ID, b.UserID, b.BookUnitID, b.ShippingAddress,
		b.StartDate, b.EndDate, b.Active, dates.Today(b.Now))
}

// BuildRecord returns a stored record holding the address unencrypted.
func (b *BorrowingBuilder) BuildRecord() shared.BorrowingRecord {
	return shared.BorrowingRecord{
		ID:                       b.ID,
		UserID:                   b.UserID,
		BookUnitID:               b.BookUnitID,
		EncryptedShippingAddress: b.ShippingAddress,
		StartDate:                dates.Day(b.StartDate),
		EndDate:                  dates.Day(b.EndDate),
		Active:                   b.Active,
		CreatedAt:                dates.Today(b.Now),
	}
}

func (b *BorrowingBuilder) BuildInput() commands.CreateBorrowingInput {
	return commands.CreateBorrowingInput{
		UserID:          b.UserID,
		BookUnitID:      b.BookUnitID,
		ShippingAddress: b.ShippingAddress,
		StartDate:       dates.Day(b.StartDate),
		EndDate:         dates.Day(b.EndDate),
	}
}

func (b *BorrowingBuilder) BuildCreateRequestDTO() reqdto.CreateBorrowingRequest {
	return reqdto.CreateBorrowingRequest{
		UserID:          b.UserID,
		BookUnitID:      b.BookUnitID,
		ShippingAddress: b.ShippingAddress,
		StartDate:       dates.Format(b.StartDate),
		EndDate:         dates.Format(b.EndDate),
	}
}

func (b *BorrowingBuilder) BuildView() *queries.BorrowingView {
	return &queries.BorrowingView{
		ID:              b.ID,
		UserID:          b.UserID,
		BookUnitID:      b.BookUnitID,
		ShippingAddress: b.ShippingAddress,
		StartDate:       dates.Day(b.StartDate),
		EndDate:         dates.Day(b.EndDate),
		Active:          b.Active,
		CreatedAt:       dates.Today(b.Now),
	}
}

// Fluent builder methods
func (b *BorrowingBuilder) WithID(id int64) *BorrowingBuilder {
	b.ID = id
	return b
}

func (b *BorrowingBuilder) WithUserID(userID int64) *BorrowingBuilder {
	b.UserID = userID
	return b
}

func (b *BorrowingBuilder) WithBookUnitID(bookUnitID int64) *BorrowingBuilder {
	b.BookUnitID = bookUnitID
	return b
}

func (b *BorrowingBuilder) WithShippingAddress(address string) *BorrowingBuilder {
	b.ShippingAddress = address
	return b
}

func (b *BorrowingBuilder) WithPeriod(start, end time.Time) *BorrowingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BorrowingBuilder) WithNow(now time.Time) *BorrowingBuilder {
	b.Now = now
	return b
}

func (b *BorrowingBuilder) AsInactive() *BorrowingBuilder {
	b.Active = false
	return b
}

// AsExpired moves the period so that it ended the given number of days before today.
func (b *BorrowingBuilder) AsExpired(daysAgo int) *BorrowingBuilder {
	today := dates.Today(b.Now)
	b.EndDate = dates.AddDays(today, -daysAgo)
	b.StartDate = dates.AddDays(b.EndDate, -14)
	b.Active = false
	return b
}
