package components

import (
	"context"

	"hirebot/internal/pkg/clock"
	"hirebot/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseNotifierModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseNotifierModule = fx.Module("usecase/notifier",
	fx.Provide(
		fx.Annotate(
			usecase.NewDispatcher,
			fx.As(new(usecase.EventDispatcher)),
			fx.As(new(usecase.ReminderNotifier)),
		),
		fx.Annotate(
			usecase.NewScheduler,
			fx.As(fx.Self()),
			fx.As(new(usecase.ReminderScheduler)),
		),
		usecase.NewListener,
		usecase.NewNotifierService,
	),
	fx.Invoke(registerNotifier),
)

func registerNotifier(lc fx.Lifecycle, svc *usecase.NotifierService) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return svc.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return svc.Stop(ctx)
		},
	})
}
