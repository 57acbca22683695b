// Package retention purges closed borrowings once they fall outside the retention
// horizon.
package retention

import (
	"context"
	"log/slog"
	"time"

	"borrowing-service/internal/domain/borrowing"
	"borrowing-service/internal/pkg/clock"
	"borrowing-service/internal/pkg/dates"
	"borrowing-service/internal/usecase/shared"
)

const DefaultRetentionDays = 730

type Sweeper struct {
	repo   shared.BorrowingRepository
	clock  clock.Clock
	days   int
	logger *slog.Logger
}

func NewSweeper(repo shared.BorrowingRepository, clk clock.Clock, days int, logger *slog.Logger) *Sweeper {
	if days <= 0 {
		days = DefaultRetentionDays
	}
	return &Sweeper{repo: repo, clock: clk, days: days, logger: logger}
}

// Cutoff is the first day that is still retained.
func (s *Sweeper) Cutoff() time.Time {
	return dates.AddDays(dates.Today(s.clock.Now()), -s.days)
}

// Sweep deletes inactive borrowings whose end date lies before Cutoff. Records are
// deleted one at a time; a failed delete is logged and the sweep moves on.
func (s *Sweeper) Sweep(ctx context.Context) {
	cutoff := s.Cutoff()
	expired, err := s.repo.FindExpiredInactive(ctx, cutoff)
	if err != nil {
		s.logger.Error("retention sweep could not list expired borrowings",
			"cutoff", dates.Format(cutoff), "error", err)
		return
	}

	deleted, failed, skipped := 0, 0, 0
	for _, rec := range expired {
		if ctx.Err() != nil {
			s.logger.Warn("retention sweep interrupted", "deleted", deleted, "remaining", len(expired)-deleted-failed-skipped)
			return
		}
		if !expiredRecord(rec, cutoff) {
			skipped++
			s.logger.Warn("store returned a borrowing that is not expired, keeping it",
				"borrowing_id", rec.ID, "end_date", dates.Format(rec.EndDate), "active", rec.Active)
			continue
		}
		if err := s.repo.Delete(ctx, rec.ID); err != nil {
			failed++
			s.logger.Error("failed to delete expired borrowing", "borrowing_id", rec.ID, "error", err)
			continue
		}
		deleted++
	}

	s.logger.Info("retention sweep finished",
		"cutoff", dates.Format(cutoff), "candidates", len(expired), "deleted", deleted, "failed", failed, "skipped", skipped)
}

// the address stays sealed, the expiry rule does not look at it
func expiredRecord(rec shared.BorrowingRecord, cutoff time.Time) bool {
	b := borrowing.ReconstructBorrowing(rec.ID, rec.UserID, rec.BookUnitID, rec.EncryptedShippingAddress,
		rec.StartDate, rec.EndDate, rec.Active, rec.CreatedAt)
	return b.IsExpired(cutoff)
}
