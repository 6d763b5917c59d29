package components

import (
	"booking-engine/internal/handler"
	"booking-engine/internal/handler/api"
	"booking-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewQuoteHandler,
		api.NewAvailabilityHandler,
		api.NewPropertyHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
