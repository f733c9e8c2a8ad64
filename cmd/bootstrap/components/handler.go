package components

import (
	"spa-promotions/internal/handler"
	"spa-promotions/internal/handler/api"
	"spa-promotions/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPromotionHandler,
		api.NewCatalogHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
