package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"savesphere/internal/handler/api"
	"savesphere/internal/handler/middleware"
	"savesphere/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Deal         *api.DealHandler
	Home         *api.HomeHandler
	Redemption   *api.RedemptionHandler
	Notification *api.NotificationHandler
	User         *api.UserHandler
	Verification *api.VerificationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, identity *middleware.IdentityMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, identity)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, identity *middleware.IdentityMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(identity.ResolveUser())
	{
		deals := apiGroup.Group("/deals")
		{
			addRoutes(deals, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Deal.List},
				{Method: http.MethodPost, Path: "", Handler: h.Deal.Post},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Deal.Get},
				{Method: http.MethodPost, Path: "/:id/verify", Handler: h.Deal.Verify},
				{Method: http.MethodPost, Path: "/:id/flag", Handler: h.Deal.Flag},
				{Method: http.MethodPost, Path: "/:id/redemption/code", Handler: h.Redemption.ShowCode},
				{Method: http.MethodPost, Path: "/:id/redemption/redeem", Handler: h.Redemption.Redeem},
				{Method: http.MethodPost, Path: "/:id/redemption/receipt", Handler: h.Redemption.UploadReceipt},
			})
		}

		home := apiGroup.Group("/home")
		{
			addRoutes(home, []route{
				{Method: http.MethodGet, Path: "/featured", Handler: h.Home.Featured},
				{Method: http.MethodGet, Path: "/nearby", Handler: h.Home.Nearby},
				{Method: http.MethodGet, Path: "/trending", Handler: h.Home.Trending},
			})
		}

		notifications := apiGroup.Group("/notifications")
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Notification.List},
				{Method: http.MethodPost, Path: "/read", Handler: h.Notification.MarkAllRead},
				{Method: http.MethodPost, Path: "/:id/read", Handler: h.Notification.MarkRead},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/categories", Handler: h.Deal.Categories},
			{Method: http.MethodGet, Path: "/users/:id", Handler: h.User.Get},
			{Method: http.MethodPost, Path: "/verifications/:kind", Handler: h.Verification.Run},
		})
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
