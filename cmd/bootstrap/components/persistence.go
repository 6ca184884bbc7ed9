package components

import (
	"showhost-service/internal/infra/db"
	"showhost-service/internal/infra/readstore"
	"showhost-service/internal/infra/uow"
	"showhost-service/internal/usecase"
	"showhost-service/internal/usecase/queries"
	"showhost-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewHostReadStore,
			fx.As(new(usecase.HostReadStore)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(usecase.ProductReadStore)),
		),
		fx.Annotate(
			readstore.NewConnectionReadStore,
			fx.As(new(queries.ConnectionReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
