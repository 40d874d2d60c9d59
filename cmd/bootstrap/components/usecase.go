package components

import (
	"savesphere/internal/pkg/clock"
	"savesphere/internal/usecase/commands"
	"savesphere/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewDealCommands,
		commands.NewRedemptionCommands,
		commands.NewVerificationCommands,
		commands.NewNotificationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewNotificationQueries,
		queries.NewUserQueries,
	),
)
