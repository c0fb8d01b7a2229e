package components

import (
	"hirebot/internal/handler/api"
	"hirebot/internal/infra/db"
	"hirebot/internal/infra/queries"
	"hirebot/internal/infra/readstore"
	"hirebot/internal/infra/repository"
	"hirebot/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	listenerModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			queries.New,
			fx.As(new(readstore.NotificationReadQueries)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(shared.NotificationReadStore)),
			fx.As(new(api.ActivityLookup)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			queries.New,
			fx.As(new(repository.ReminderQueries)),
		),
		fx.Annotate(
			repository.NewReminderRepository,
			fx.As(new(shared.ReminderRepository)),
		),
	),
)

// LISTEN runs on its own connection, outside the pool.
var listenerModule = fx.Module("persistence/listener",
	fx.Provide(
		fx.Annotate(
			db.NewDedicatedConnector,
			fx.As(new(shared.ListenConnector)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
