package components

import (
	"log/slog"

	"promocode-service/internal/infra/db"
	"promocode-service/internal/infra/readstore"
	"promocode-service/internal/infra/uow"
	"promocode-service/internal/usecase/queries"
	"promocode-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Promocode
		fx.Annotate(
			readstore.NewPromocodeReadStore,
			fx.As(new(queries.PromocodeReadStore)),
		),
		// Account
		fx.Annotate(
			readstore.NewAccountReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Comment
		fx.Annotate(
			readstore.NewCommentReadStore,
			fx.As(new(queries.CommentReadStore)),
		),
	),
)

// Write-side repositories are created per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			NewUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewUnitOfWork(pool *pgxpool.Pool, logger *slog.Logger) *uow.PostgresUoW {
	return uow.NewPostgresUoW(pool, logger)
}

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
