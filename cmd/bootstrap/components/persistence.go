package components

import (
	"boxrent/internal/infra/db"
	"boxrent/internal/infra/readstore"
	"boxrent/internal/infra/repository"
	"boxrent/internal/infra/uow"
	"boxrent/internal/usecase"
	"boxrent/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewRentalReadStore,
			fx.As(new(queries.RentalViewRepo)),
		),
		fx.Annotate(
			readstore.NewResourceReadStore,
			fx.As(new(queries.ResourceViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(usecase.UserViewRepo)),
		),
		readstore.NewCommandReads,
		// Pool-backed rental repository doubles as the availability
		// occupancy source outside transactions.
		fx.Annotate(
			repository.NewRentalRepository,
			fx.As(new(queries.OccupancyStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
