package bootstrap

import (
	"borrowing-service/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	BusModule,
	CryptoModule,
	components.RepositoryModule,
	components.MessagingModule,
	components.UseCaseModule,
	components.RetentionModule,
	components.HandlerModule,
)
