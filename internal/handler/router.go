package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"seat-redeem/internal/handler/api"
	"seat-redeem/internal/handler/middleware"
	"seat-redeem/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Auth   *api.AuthHandler
	Redeem *api.RedeemHandler
	Admin  *api.AdminHandler
}

func NewHandlers(auth *api.AuthHandler, redeem *api.RedeemHandler, admin *api.AdminHandler) Handlers {
	return Handlers{
		Auth:   auth,
		Redeem: redeem,
		Admin:  admin,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		redeem := apiGroup.Group("/redeem")
		{
			addRoutes(redeem, []route{
				{Method: http.MethodPost, Path: "/verify", Handler: h.Redeem.Verify},
				{Method: http.MethodPost, Path: "/confirm", Handler: h.Redeem.Confirm},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := admin.Group("")
			authRequired.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/vouchers", Handler: h.Admin.ListVouchers},
				{Method: http.MethodPost, Path: "/vouchers", Handler: h.Admin.GenerateVoucher},
				{Method: http.MethodPost, Path: "/vouchers/batch", Handler: h.Admin.GenerateBatch},
				{Method: http.MethodGet, Path: "/vouchers/unused", Handler: h.Admin.ListUnusedVouchers},
				{Method: http.MethodGet, Path: "/vouchers/:code", Handler: h.Admin.GetVoucher},
				{Method: http.MethodDelete, Path: "/vouchers/:code", Handler: h.Admin.DeleteVoucher},
				{Method: http.MethodGet, Path: "/records", Handler: h.Admin.ListRecords},
				{Method: http.MethodGet, Path: "/resources", Handler: h.Admin.ListResources},
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
