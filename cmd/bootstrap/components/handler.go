package components

import (
	"promocode-service/internal/handler"
	"promocode-service/internal/handler/api"
	"promocode-service/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewProfileHandler,
		api.NewBusinessPromoHandler,
		api.NewUserPromoHandler,
		api.NewHealthHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
