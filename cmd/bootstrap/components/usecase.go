package components

import (
	"showhost-service/internal/pkg/clock"
	"showhost-service/internal/usecase"
	"showhost-service/internal/usecase/commands"
	"showhost-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewHostResolver,
	usecase.NewProductAuthorizer,
	usecase.NewTokenValidator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewConnectionUseCase,
		commands.NewCoHostUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewConnectionQueries,
	),
)
