package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"spa-promotions/internal/handler/api"
	"spa-promotions/internal/handler/middleware"
	"spa-promotions/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	promotionHandler *api.PromotionHandler,
	catalogHandler *api.CatalogHandler,
	userHandler *api.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, promotionHandler, catalogHandler, userHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	promotionHandler *api.PromotionHandler,
	catalogHandler *api.CatalogHandler,
	userHandler *api.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		promotions := apiGroup.Group("/promotions")
		promotions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(promotions, []route{
				{Method: http.MethodPost, Path: "", Handler: promotionHandler.Propose},
				{Method: http.MethodGet, Path: "", Handler: promotionHandler.History},
				{Method: http.MethodGet, Path: "/active", Handler: promotionHandler.Active},
				{Method: http.MethodPost, Path: "/compose", Handler: promotionHandler.Compose},
				{Method: http.MethodGet, Path: "/:id", Handler: promotionHandler.ByID},
				{Method: http.MethodPatch, Path: "/:id", Handler: promotionHandler.Edit},
				{Method: http.MethodDelete, Path: "/:id", Handler: promotionHandler.Delete},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: promotionHandler.Submit},
				{Method: http.MethodPost, Path: "/:id/resolve", Handler: promotionHandler.Resolve},
			})
		}

		services := apiGroup.Group("/services")
		services.Use(authMiddleware.RequireAuth())
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.Grouped},
				{Method: http.MethodPost, Path: "", Handler: catalogHandler.CreateService},
				{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.ServiceByID},
				{Method: http.MethodPatch, Path: "/:id", Handler: catalogHandler.UpdateService},
				{Method: http.MethodDelete, Path: "/:id", Handler: catalogHandler.DeleteService},
			})
		}

		categories := apiGroup.Group("/categories")
		categories.Use(authMiddleware.RequireAuth())
		{
			addRoutes(categories, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.Categories},
				{Method: http.MethodPost, Path: "", Handler: catalogHandler.AddCategory},
				{Method: http.MethodPost, Path: "/rename", Handler: catalogHandler.RenameCategory},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "", Handler: userHandler.List},
				{Method: http.MethodPost, Path: "", Handler: userHandler.Create},
				{Method: http.MethodPost, Path: "/:id/deactivate", Handler: userHandler.Deactivate},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
