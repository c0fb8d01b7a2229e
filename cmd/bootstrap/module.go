package bootstrap

import (
	"hirebot/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	DBModule,
	components.PersistenceModule,
	components.MessengerModule,
	components.UseCaseModule,
	components.HandlerModule,
)
