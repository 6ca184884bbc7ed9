package components

import (
	"showhost-service/internal/handler"
	"showhost-service/internal/handler/api"
	"showhost-service/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewConnectionHandler,
		api.NewProductHandler,
		api.NewCoHostHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
