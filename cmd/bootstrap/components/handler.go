package components

import (
	"boxrent/internal/handler"
	"boxrent/internal/handler/api"
	"boxrent/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRentalHandler,
		api.NewResourceHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
