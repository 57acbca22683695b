package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"borrowing-service/internal/pkg/dates"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrInfiniteDate = errors.New("infinite date values are not supported")

func DateFromPgtype(pd pgtype.Date) (time.Time, error) {
	if pd.InfinityModifier != pgtype.Finite {
		return time.Time{}, ErrInfiniteDate
	}
	return dates.Day(pd.Time), nil
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
