package components

import (
	"cuponera-backend/internal/pkg/clock"
	"cuponera-backend/internal/usecase"
	"cuponera-backend/internal/usecase/commands"
	"cuponera-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		usecase.NewAuthUseCase,
		commands.NewActorCommands,
		commands.NewBatchCommands,
		commands.NewBusinessRequestCommands,
		commands.NewCatalogCommands,
		commands.NewClientCommands,
		commands.NewCommentCommands,
		commands.NewCouponCommands,
		commands.NewFavoriteCommands,
		commands.NewNotificationCommands,
		commands.NewOTPCommands,
		commands.NewRedemptionCommands,
		commands.NewShareCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewActorQueries,
		queries.NewBatchQueries,
		queries.NewBusinessRequestQueries,
		queries.NewCatalogQueries,
		queries.NewClientQueries,
		queries.NewCommentQueries,
		queries.NewCouponQueries,
		queries.NewFavoriteQueries,
		queries.NewNotificationQueries,
		queries.NewRedemptionQueries,
		queries.NewShareQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
