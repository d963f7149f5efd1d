package components

import (
	"cuponera-backend/internal/infra/db"
	"cuponera-backend/internal/infra/readstore"
	"cuponera-backend/internal/infra/uow"
	"cuponera-backend/internal/usecase/queries"
	"cuponera-backend/internal/usecase/shared"

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
		fx.Annotate(
			readstore.NewActorReadStore,
			fx.As(new(queries.ActorReadStore)),
		),
		fx.Annotate(
			readstore.NewBatchReadStore,
			fx.As(new(queries.BatchReadStore)),
		),
		fx.Annotate(
			readstore.NewBusinessRequestReadStore,
			fx.As(new(queries.BusinessRequestReadStore)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			readstore.NewClientReadStore,
			fx.As(new(queries.ClientReadStore)),
		),
		fx.Annotate(
			readstore.NewCommentReadStore,
			fx.As(new(queries.CommentReadStore)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		fx.Annotate(
			readstore.NewFavoriteReadStore,
			fx.As(new(queries.FavoriteReadStore)),
		),
		fx.Annotate(
			readstore.NewShareReadStore,
			fx.As(new(queries.ShareReadStore)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		fx.Annotate(
			readstore.NewRedemptionReadStore,
			fx.As(new(queries.RedemptionReadStore)),
		),
		// Outside a transaction, for the hierarchy walks of the query side
		fx.Annotate(
			readstore.NewCommandReadStore,
			fx.As(new(shared.CommandReads)),
		),
		shared.NewDirectory,
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
