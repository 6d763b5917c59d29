package components

import (
	"booking-engine/internal/infra/db"
	"booking-engine/internal/infra/readstore"
	"booking-engine/internal/infra/uow"
	"booking-engine/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.OverlapReadStore)),
		),
		fx.Annotate(
			readstore.NewPropertyReadStore,
			fx.As(new(queries.PropertyReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
