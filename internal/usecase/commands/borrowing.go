package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"borrowing-service/internal/domain/borrowing"
	"borrowing-service/internal/pkg/clock"
	"borrowing-service/internal/pkg/errs"
	"borrowing-service/internal/usecase/queries"
	"borrowing-service/internal/usecase/shared"
	"borrowing-service/internal/usecase/subscription"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const AuditActionBorrowingCreated = "borrowing.created"

var tracer = otel.Tracer("borrowing-service/commands")

// ValidationError names the input field a domain rule rejected.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string { return fmt.Sprintf("%s: %v", e.Field, e.Err) }
func (e *ValidationError) Unwrap() error { return e.Err }

type CreateBorrowingInput struct {
	UserID          int64
	BookUnitID      int64
	ShippingAddress string
	StartDate       time.Time
	EndDate         time.Time
}

type BorrowingCommands interface {
	Create(ctx context.Context, in CreateBorrowingInput) (*queries.BorrowingView, error)
}

type borrowingCommandsImpl struct {
	repo    shared.BorrowingRepository
	mapper  *shared.BorrowingMapper
	checker subscription.Checker
	events  EventPublisher
	audit   AuditLogger
	clock   clock.Clock
	logger  *slog.Logger
}

func NewBorrowingCommands(
	repo shared.BorrowingRepository,
	mapper *shared.BorrowingMapper,
	checker subscription.Checker,
	events EventPublisher,
	audit AuditLogger,
	clk clock.Clock,
	logger *slog.Logger,
) BorrowingCommands {
	return &borrowingCommandsImpl{
		repo:    repo,
		mapper:  mapper,
		checker: checker,
		events:  events,
		audit:   audit,
		clock:   clk,
		logger:  logger,
	}
}

func (uc *borrowingCommandsImpl) Create(ctx context.Context, in CreateBorrowingInput) (*queries.BorrowingView, error) {
	ctx, span := tracer.Start(ctx, "borrowing.Create")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("user_id", in.UserID),
		attribute.Int64("book_unit_id", in.BookUnitID),
	)

	b, err := borrowing.NewBorrowing(in.UserID, in.BookUnitID, in.ShippingAddress, in.StartDate, in.EndDate, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(&ValidationError{Field: fieldOf(err), Err: err}, errs.ErrValidation)
	}

	res, err := uc.checker.RequestCheck(ctx, in.UserID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "subscription check failed")
		return nil, err
	}

	sub := borrowing.Subscription{Active: res.HasActiveSubscription, EndDate: res.SubscriptionEndDate}
	if err := b.Period().CoveredBy(sub); err != nil {
		uc.logger.Info("borrowing rejected by subscription check",
			"user_id", in.UserID, "book_unit_id", in.BookUnitID, "reason", err.Error())
		return nil, errs.Mark(err, errs.ErrNotEligible)
	}

	rec, err := uc.mapper.ToRecord(b)
	if err != nil {
		return nil, err
	}
	saved, err := uc.repo.Save(ctx, rec)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	span.SetAttributes(attribute.Int64("borrowing_id", saved.ID))

	if err := uc.audit.Record(ctx, AuditEntry{
		Action:     AuditActionBorrowingCreated,
		BorrowerID: saved.UserID,
		BookUnitID: saved.BookUnitID,
		StartDate:  saved.StartDate,
		EndDate:    saved.EndDate,
	}); err != nil {
		uc.logger.Warn("failed to write audit entry", "borrowing_id", saved.ID, "error", err)
	}

	if err := uc.events.PublishBorrowingCreated(ctx, BorrowingCreated{BookUnitID: saved.BookUnitID}); err != nil {
		uc.logger.Error("failed to publish borrowing created event",
			"borrowing_id", saved.ID, "book_unit_id", saved.BookUnitID, "error", err)
	}

	created, err := uc.mapper.ToDomain(saved)
	if err != nil {
		return nil, err
	}
	return queries.NewBorrowingView(created), nil
}

func fieldOf(err error) string {
	switch {
	case errs.Is(err, borrowing.ErrInvalidUserID):
		return "userId"
	case errs.Is(err, borrowing.ErrInvalidBookUnitID):
		return "bookUnitId"
	case errs.Is(err, borrowing.ErrBlankShippingAddress), errs.Is(err, borrowing.ErrShippingAddressLength):
		return "shippingAddress"
	case errs.Is(err, borrowing.ErrMissingStartDate), errs.Is(err, borrowing.ErrStartInPast):
		return "startDate"
	default:
		return "endDate"
	}
}
