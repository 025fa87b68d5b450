package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"promocode-service/internal/domain/user"
	"promocode-service/internal/handler/api"
	"promocode-service/internal/handler/middleware"
	"promocode-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *slog.Logger
	Gatherer       prometheus.Gatherer
	HTTPRecorder   middleware.HTTPRecorder
	AuthMiddleware *middleware.AuthMiddleware
	Auth           *api.AuthHandler
	Profile        *api.ProfileHandler
	BusinessPromo  *api.BusinessPromoHandler
	UserPromo      *api.UserPromoHandler
	Health         *api.HealthHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger, p.HTTPRecorder)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, recorder middleware.HTTPRecorder) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.MetricsMiddleware(recorder))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", p.Health.Health)
	engine.GET("/health/antifraud", p.Health.Antifraud)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authMw := p.AuthMiddleware
	apiGroup := engine.Group("/api")
	{
		business := apiGroup.Group("/business")
		{
			addRoutes(business.Group("/auth"), []route{
				{Method: http.MethodPost, Path: "/sign-up", Handler: p.Auth.SignUpBusiness},
				{Method: http.MethodPost, Path: "/sign-in", Handler: p.Auth.SignInBusiness},
			})

			promo := business.Group("/promo")
			promo.Use(authMw.RequireAuth(), authMw.RequireRole(user.RoleBusiness))
			addRoutes(promo, []route{
				{Method: http.MethodPost, Path: "", Handler: p.BusinessPromo.Create},
				{Method: http.MethodGet, Path: "", Handler: p.BusinessPromo.List},
				{Method: http.MethodGet, Path: "/:id", Handler: p.BusinessPromo.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: p.BusinessPromo.Patch},
				{Method: http.MethodGet, Path: "/:id/stat", Handler: p.BusinessPromo.Stat},
			})
		}

		userGroup := apiGroup.Group("/user")
		{
			addRoutes(userGroup.Group("/auth"), []route{
				{Method: http.MethodPost, Path: "/sign-up", Handler: p.Auth.SignUpUser},
				{Method: http.MethodPost, Path: "/sign-in", Handler: p.Auth.SignInUser},
			})

			authed := userGroup.Group("")
			authed.Use(authMw.RequireAuth(), authMw.RequireRole(user.RoleUser))
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/profile", Handler: p.Profile.Get},
				{Method: http.MethodPatch, Path: "/profile", Handler: p.Profile.Patch},
				{Method: http.MethodGet, Path: "/feed", Handler: p.UserPromo.Feed},
				{Method: http.MethodGet, Path: "/promo/history", Handler: p.UserPromo.History},
				{Method: http.MethodGet, Path: "/promo/:id", Handler: p.UserPromo.Get},
				{Method: http.MethodPost, Path: "/promo/:id/activate", Handler: p.UserPromo.Activate},
				{Method: http.MethodPost, Path: "/promo/:id/like", Handler: p.UserPromo.Like},
				{Method: http.MethodDelete, Path: "/promo/:id/like", Handler: p.UserPromo.Unlike},
				{Method: http.MethodPost, Path: "/promo/:id/comments", Handler: p.UserPromo.AddComment},
				{Method: http.MethodGet, Path: "/promo/:id/comments", Handler: p.UserPromo.ListComments},
				{Method: http.MethodGet, Path: "/promo/:id/comments/:comment_id", Handler: p.UserPromo.GetComment},
				{Method: http.MethodPut, Path: "/promo/:id/comments/:comment_id", Handler: p.UserPromo.EditComment},
				{Method: http.MethodDelete, Path: "/promo/:id/comments/:comment_id", Handler: p.UserPromo.DeleteComment},
			})
		}
	}
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
