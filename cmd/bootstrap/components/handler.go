package components

import (
	"borrowing-service/internal/handler"
	"borrowing-service/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBorrowingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
