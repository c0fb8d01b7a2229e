package components

import (
	"hirebot/internal/handler"
	"hirebot/internal/handler/api"
	"hirebot/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(svc *usecase.NotifierService) api.HealthReporter { return svc },
		api.NewHealthHandler,
		api.NewReminderHandler,
	),
	fx.Invoke(handler.NewRouter),
)
