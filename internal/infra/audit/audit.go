// Package audit writes the borrowing audit trail as structured log records.
package audit

import (
	"context"
	"log/slog"

	"borrowing-service/internal/pkg/dates"
	"borrowing-service/internal/usecase/commands"
)

type SlogAuditLogger struct {
	logger *slog.Logger
}

func NewSlogAuditLogger(logger *slog.Logger) *SlogAuditLogger {
	return &SlogAuditLogger{logger: logger.With(slog.String("log_type", "audit"))}
}

func (a *SlogAuditLogger) Record(ctx context.Context, entry commands.AuditEntry) error {
	a.logger.LogAttrs(ctx, slog.LevelInfo, "audit",
		slog.String("action", entry.Action),
		slog.Int64("borrower_id", entry.BorrowerID),
		slog.Int64("book_unit_id", entry.BookUnitID),
		slog.String("start_date", dates.Format(entry.StartDate)),
		slog.String("end_date", dates.Format(entry.EndDate)),
	)
	return nil
}
