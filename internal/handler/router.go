package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"showhost-service/internal/handler/api"
	"showhost-service/internal/handler/middleware"
	"showhost-service/internal/pkg/config"
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
	connectionHandler *api.ConnectionHandler,
	productHandler *api.ProductHandler,
	cohostHandler *api.CoHostHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, connectionHandler, productHandler, cohostHandler, authMiddleware)
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
	connectionHandler *api.ConnectionHandler,
	productHandler *api.ProductHandler,
	cohostHandler *api.CoHostHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		connections := apiGroup.Group("/connections")
		{
			addRoutes(connections, []route{
				{Method: http.MethodPost, Path: "", Handler: connectionHandler.Request},
				{Method: http.MethodGet, Path: "", Handler: connectionHandler.List},
				{Method: http.MethodPost, Path: "/:dropshipperId/respond", Handler: connectionHandler.Respond},
				{Method: http.MethodDelete, Path: "/:counterpartyId", Handler: connectionHandler.RevokeOrWithdraw},
			})
		}

		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodPost, Path: "/authorize", Handler: productHandler.Authorize},
			})
		}

		shows := apiGroup.Group("/shows")
		{
			addRoutes(shows, []route{
				{Method: http.MethodPost, Path: "/:id/cohost/invites", Handler: cohostHandler.SendInvite},
				{Method: http.MethodPost, Path: "/:id/cohost/join-live", Handler: cohostHandler.JoinLive},
			})
		}

		invites := apiGroup.Group("/cohost/invites")
		{
			addRoutes(invites, []route{
				{Method: http.MethodPost, Path: "/:id/respond", Handler: cohostHandler.Respond},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: cohostHandler.Cancel},
				{Method: http.MethodPost, Path: "/:id/leave", Handler: cohostHandler.Leave},
				{Method: http.MethodPost, Path: "/:id/remove", Handler: cohostHandler.Remove},
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
