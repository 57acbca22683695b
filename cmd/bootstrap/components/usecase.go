package components

import (
	"borrowing-service/internal/infra/audit"
	"borrowing-service/internal/pkg/clock"
	"borrowing-service/internal/usecase/commands"
	"borrowing-service/internal/usecase/queries"
	"borrowing-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewBorrowingMapper,
	fx.Annotate(
		audit.NewSlogAuditLogger,
		fx.As(new(commands.AuditLogger)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBorrowingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBorrowingQueries,
	),
)
