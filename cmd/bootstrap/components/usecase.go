package components

import (
	"boxrent/internal/pkg/clock"
	"boxrent/internal/usecase"
	"boxrent/internal/usecase/commands"
	"boxrent/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewSystemClock,
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
		commands.NewRentalCommands,
		queries.NewRentalQueries,
		queries.NewResourceQueries,
		queries.NewAvailabilityQueries,
	),
)
