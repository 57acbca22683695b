package queries

import (
	"context"
	"time"

	"borrowing-service/internal/domain/borrowing"
	"borrowing-service/internal/infra"
	"borrowing-service/internal/pkg/errs"
	"borrowing-service/internal/usecase/shared"
)

type BorrowingView struct {
	ID              int64
	UserID          int64
	BookUnitID      int64
	ShippingAddress string
	StartDate       time.Time
	EndDate         time.Time
	Active          bool
	CreatedAt       time.Time
}

func NewBorrowingView(b *borrowing.Borrowing) *BorrowingView {
	return &BorrowingView{
		ID:              b.ID(),
		UserID:          b.UserID(),
		BookUnitID:      b.BookUnitID(),
		ShippingAddress: b.ShippingAddress().String(),
		StartDate:       b.StartDate(),
		EndDate:         b.EndDate(),
		Active:          b.IsActive(),
		CreatedAt:       b.CreatedAt(),
	}
}

type BorrowingQueries interface {
	GetByID(ctx context.Context, id int64) (*BorrowingView, error)
	ListByUser(ctx context.Context, userID int64) ([]*BorrowingView, error)
	ListActiveByUser(ctx context.Context, userID int64) ([]*BorrowingView, error)
	ListInactiveByUser(ctx context.Context, userID int64) ([]*BorrowingView, error)
	ListByBookUnit(ctx context.Context, bookUnitID int64) ([]*BorrowingView, error)
}

type borrowingQueriesImpl struct {
	repo   shared.BorrowingRepository
	mapper *shared.BorrowingMapper
}

func NewBorrowingQueries(repo shared.BorrowingRepository, mapper *shared.BorrowingMapper) BorrowingQueries {
	return &borrowingQueriesImpl{repo: repo, mapper: mapper}
}

func (q *borrowingQueriesImpl) GetByID(ctx context.Context, id int64) (*BorrowingView, error) {
	rec, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBorrowingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	b, err := q.mapper.ToDomain(rec)
	if err != nil {
		return nil, err
	}
	return NewBorrowingView(b), nil
}

func (q *borrowingQueriesImpl) ListByUser(ctx context.Context, userID int64) ([]*BorrowingView, error) {
	return q.list(q.repo.FindByUserID(ctx, userID))
}

func (q *borrowingQueriesImpl) ListActiveByUser(ctx context.Context, userID int64) ([]*BorrowingView, error) {
	return q.list(q.repo.FindByUserIDAndActive(ctx, userID, true))
}

func (q *borrowingQueriesImpl) ListInactiveByUser(ctx context.Context, userID int64) ([]*BorrowingView, error) {
	return q.list(q.repo.FindByUserIDAndActive(ctx, userID, false))
}

func (q *borrowingQueriesImpl) ListByBookUnit(ctx context.Context, bookUnitID int64) ([]*BorrowingView, error) {
	return q.list(q.repo.FindByBookUnitID(ctx, bookUnitID))
}

func (q *borrowingQueriesImpl) list(recs []shared.BorrowingRecord, err error) ([]*BorrowingView, error) {
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	items, err := q.mapper.ToDomainList(recs)
	if err != nil {
		return nil, err
	}
	views := make([]*BorrowingView, 0, len(items))
	for _, b := range items {
		views = append(views, NewBorrowingView(b))
	}
	return views, nil
}
