package repository

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"borrowing-service/internal/infra"
	"borrowing-service/internal/pkg/dates"
	"borrowing-service/internal/pkg/pgconv"
	"borrowing-service/internal/usecase/shared"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // registers the postgres dialect
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const borrowingsTable = "borrowings"

var (
	dialect = goqu.Dialect("postgres")

	borrowingColumns = []any{
		"id", "user_id", "book_unit_id", "shipping_address",
		"start_date", "end_date", "active", "created_at",
	}
)

// DBTX is the subset of pgxpool.Pool and pgx.Tx used by the repository.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type BorrowingRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewBorrowingRepository(db DBTX, logger *slog.Logger) *BorrowingRepository {
	return &BorrowingRepository{db: db, logger: logger}
}

func (r *BorrowingRepository) Save(ctx context.Context, rec shared.BorrowingRecord) (shared.BorrowingRecord, error) {
	query, args, err := insertBorrowingSQL(rec)
	if err != nil {
		return shared.BorrowingRecord{}, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build insert", err)
	}
	saved, err := scanBorrowing(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return shared.BorrowingRecord{}, r.wrap("failed to insert borrowing", err)
	}
	return saved, nil
}

func (r *BorrowingRepository) FindByID(ctx context.Context, id int64) (shared.BorrowingRecord, error) {
	query, args, err := selectBorrowingsSQL(goqu.C("id").Eq(id))
	if err != nil {
		return shared.BorrowingRecord{}, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build select", err)
	}
	rec, err := scanBorrowing(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return shared.BorrowingRecord{}, infra.WrapRepoErr(r.logger, infra.KindNotFound, "borrowing not found", err)
		}
		return shared.BorrowingRecord{}, r.wrap("failed to get borrowing", err)
	}
	return rec, nil
}

func (r *BorrowingRepository) FindByUserID(ctx context.Context, userID int64) ([]shared.BorrowingRecord, error) {
	return r.findMany(ctx, "failed to list borrowings by user", goqu.C("user_id").Eq(userID))
}

func (r *BorrowingRepository) FindByUserIDAndActive(ctx context.Context, userID int64, active bool) ([]shared.BorrowingRecord, error) {
	return r.findMany(ctx, "failed to list borrowings by user and state",
		goqu.C("user_id").Eq(userID),
		goqu.C("active").Eq(active),
	)
}

func (r *BorrowingRepository) FindByBookUnitID(ctx context.Context, bookUnitID int64) ([]shared.BorrowingRecord, error) {
	return r.findMany(ctx, "failed to list borrowings by book unit", goqu.C("book_unit_id").Eq(bookUnitID))
}

func (r *BorrowingRepository) FindExpiredInactive(ctx context.Context, cutoff time.Time) ([]shared.BorrowingRecord, error) {
	return r.findMany(ctx, "failed to list expired borrowings",
		goqu.C("end_date").Lt(dates.Day(cutoff)),
		goqu.C("active").IsFalse(),
	)
}

func (r *BorrowingRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := deleteBorrowingSQL(id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build delete", err)
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return r.wrap("failed to delete borrowing", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "borrowing not found", nil)
	}
	return nil
}

func (r *BorrowingRepository) findMany(ctx context.Context, msg string, where ...exp.Expression) ([]shared.BorrowingRecord, error) {
	query, args, err := selectBorrowingsSQL(where...)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build select", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, r.wrap(msg, err)
	}
	recs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (shared.BorrowingRecord, error) {
		return scanBorrowing(row)
	})
	if err != nil {
		return nil, r.wrap(msg, err)
	}
	return recs, nil
}

func (r *BorrowingRepository) wrap(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return infra.WrapRepoErr(r.logger, infra.KindConstraintViolated, msg, err)
	}
	return infra.WrapRepoErr(r.logger, infra.KindDBFailure, msg, err)
}

func insertBorrowingSQL(rec shared.BorrowingRecord) (string, []any, error) {
	return dialect.Insert(borrowingsTable).
		Rows(goqu.Record{
			"user_id":          rec.UserID,
			"book_unit_id":     rec.BookUnitID,
			"shipping_address": rec.EncryptedShippingAddress,
			"start_date":       dates.Day(rec.StartDate),
			"end_date":         dates.Day(rec.EndDate),
			"active":           rec.Active,
			"created_at":       dates.Day(rec.CreatedAt),
		}).
		Returning(borrowingColumns...).
		Prepared(true).
		ToSQL()
}

func selectBorrowingsSQL(where ...exp.Expression) (string, []any, error) {
	return dialect.From(borrowingsTable).
		Select(borrowingColumns...).
		Where(where...).
		Order(goqu.C("id").Asc()).
		Prepared(true).
		ToSQL()
}

func deleteBorrowingSQL(id int64) (string, []any, error) {
	return dialect.Delete(borrowingsTable).
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
}

func scanBorrowing(row pgx.Row) (shared.BorrowingRecord, error) {
	var (
		rec                       shared.BorrowingRecord
		startDate, endDate, since pgtype.Date
	)
	if err := row.Scan(
		&rec.ID, &rec.UserID, &rec.BookUnitID, &rec.EncryptedShippingAddress,
		&startDate, &endDate, &rec.Active, &since,
	); err != nil {
		return shared.BorrowingRecord{}, err
	}

	var err error
	if rec.StartDate, err = pgconv.DateFromPgtype(startDate); err != nil {
		return shared.BorrowingRecord{}, err
	}
	if rec.EndDate, err = pgconv.DateFromPgtype(endDate); err != nil {
		return shared.BorrowingRecord{}, err
	}
	if rec.CreatedAt, err = pgconv.DateFromPgtype(since); err != nil {
		return shared.BorrowingRecord{}, err
	}
	return rec, nil
}
