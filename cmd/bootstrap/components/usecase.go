package components

import (
	"booking-engine/internal/domain/booking"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	booking.NewFactory,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewPropertyQueries,
		queries.NewAvailabilityQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewQuoteCommands,
	),
)
