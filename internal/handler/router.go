package handler

import (
	"net/http"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/handler/api"
	"cuponera-backend/internal/handler/middleware"
	"cuponera-backend/internal/infra/metrics"
	"cuponera-backend/internal/pkg/config"
	"cuponera-backend/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Batch        *api.BatchHandler
	Coupon       *api.CouponHandler
	Redemption   *api.RedemptionHandler
	Actor        *api.ActorHandler
	Client       *api.ClientHandler
	Comment      *api.CommentHandler
	Favorite     *api.FavoriteHandler
	Share        *api.ShareHandler
	Notification *api.NotificationHandler
	Catalog      *api.CatalogHandler
	OTP          *api.OTPHandler
	Requests     *api.BusinessRequestHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, m)
	setupRoutes(engine, cfg, m, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	if cfg.Metrics.Enabled {
		engine.Use(m.Middleware())
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, m *metrics.Metrics, h Handlers, am *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	if cfg.Metrics.Enabled {
		engine.GET("/metrics", gin.WrapH(m.Handler()))
	}

	admin := am.RequireRole(actor.RoleAdmin.String())
	localOrAdmin := am.RequireRole(actor.RoleLocal.String(), actor.RoleAdmin.String())
	scanner := am.RequireRole(actor.RoleLocal.String(), actor.RoleStaff.String(), actor.RoleAdmin.String())
	anyActor := am.RequireKind(jwt.KindActor)
	anyClient := am.RequireKind(jwt.KindClient)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/actors/login", Handler: h.Auth.LoginActor},
				{Method: http.MethodPost, Path: "/clients/login", Handler: h.Auth.LoginClient},
			})

			authRequired := auth.Group("")
			authRequired.Use(am.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		catalog := apiGroup.Group("/catalog")
		addRoutes(catalog, []route{
			{Method: http.MethodGet, Path: "/cities", Handler: h.Catalog.Cities},
			{Method: http.MethodGet, Path: "/cities/registration", Handler: h.Catalog.RegistrationCities},
			{Method: http.MethodGet, Path: "/cities/promotions", Handler: h.Catalog.PromotionCities},
			{Method: http.MethodGet, Path: "/categories", Handler: h.Catalog.Categories},
		})

		cities := apiGroup.Group("/cities")
		cities.Use(am.RequireAuth(), admin)
		addRoutes(cities, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateCity},
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListCities},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetCity},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Catalog.UpdateCity},
			{Method: http.MethodPost, Path: "/:id/activate", Handler: h.Catalog.ActivateCity},
			{Method: http.MethodPost, Path: "/:id/deactivate", Handler: h.Catalog.DeactivateCity},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeleteCity},
		})

		categories := apiGroup.Group("/categories")
		categories.Use(am.RequireAuth(), admin)
		addRoutes(categories, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateCategory},
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListCategories},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetCategory},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Catalog.UpdateCategory},
			{Method: http.MethodPost, Path: "/:id/activate", Handler: h.Catalog.ActivateCategory},
			{Method: http.MethodPost, Path: "/:id/deactivate", Handler: h.Catalog.DeactivateCategory},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeleteCategory},
		})

		otps := apiGroup.Group("/otps")
		addRoutes(otps, []route{
			{Method: http.MethodPost, Path: "/generate", Handler: h.OTP.Generate},
			{Method: http.MethodPost, Path: "/verify", Handler: h.OTP.Verify},
		})

		requests := apiGroup.Group("/business-requests")
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Requests.Create},
				{Method: http.MethodGet, Path: "/check-email", Handler: h.Requests.CheckEmail},
			})

			requestsAdmin := requests.Group("")
			requestsAdmin.Use(am.RequireAuth(), admin)
			addRoutes(requestsAdmin, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Requests.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Requests.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Requests.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Requests.Delete},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/places", Handler: h.Actor.Places},
			{Method: http.MethodPost, Path: "/shares", Handler: h.Share.Record, Mw: []gin.HandlerFunc{am.OptionalAuth()}},
			{Method: http.MethodPost, Path: "/clients/register", Handler: h.Client.Register},
		})

		batches := apiGroup.Group("/batches")
		batches.Use(am.RequireAuth(), anyActor)
		{
			addRoutes(batches, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Batch.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Batch.Get},
				{Method: http.MethodGet, Path: "/:id/coupons", Handler: h.Coupon.ListByBatch},
				{Method: http.MethodPost, Path: "", Handler: h.Batch.Create, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Batch.Update, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Batch.Delete, Mw: []gin.HandlerFunc{admin}},
			})
		}

		coupons := apiGroup.Group("/coupons")
		coupons.Use(am.RequireAuth())
		{
			addRoutes(coupons, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Coupon.Create, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPost, Path: "/generate", Handler: h.Coupon.Generate, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPost, Path: "/activate", Handler: h.Coupon.Activate, Mw: []gin.HandlerFunc{scanner}},
				{Method: http.MethodPost, Path: "/deactivate", Handler: h.Coupon.Deactivate, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPost, Path: "/:id/scan-count", Handler: h.Coupon.IncrementScan, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPost, Path: "/:id/assign", Handler: h.Coupon.Assign, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Coupon.Delete, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Coupon.Get},
				{Method: http.MethodGet, Path: "/:id/detail", Handler: h.Coupon.Detail},
				{Method: http.MethodGet, Path: "/:id/redemptions/count", Handler: h.Redemption.CountByCoupon, Mw: []gin.HandlerFunc{anyActor}},
			})
		}

		reports := apiGroup.Group("/reports")
		reports.Use(am.RequireAuth(), admin)
		{
			addRoutes(reports, []route{
				{Method: http.MethodGet, Path: "/coupons/activated", Handler: h.Coupon.ListByActivationRange},
				{Method: http.MethodGet, Path: "/redemptions", Handler: h.Redemption.ListByDateRange},
			})
		}

		redemptions := apiGroup.Group("/redemptions")
		redemptions.Use(am.RequireAuth(), anyActor)
		{
			addRoutes(redemptions, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Redemption.Register},
				{Method: http.MethodPost, Path: "/validate", Handler: h.Redemption.Validate},
				{Method: http.MethodGet, Path: "/actors/:id", Handler: h.Redemption.ListByActor, Mw: []gin.HandlerFunc{admin}},
			})
		}

		actors := apiGroup.Group("/actors")
		{
			addRoutes(actors, []route{
				{Method: http.MethodGet, Path: "/:id/mini", Handler: h.Actor.Mini},
				{Method: http.MethodGet, Path: "/:id/comments", Handler: h.Comment.ListByActor},
			})

			actorsAuth := actors.Group("")
			actorsAuth.Use(am.RequireAuth())
			addRoutes(actorsAuth, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Actor.Create, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Actor.Get},
				{Method: http.MethodGet, Path: "/:id/shares/summary", Handler: h.Actor.ShareSummary, Mw: []gin.HandlerFunc{anyActor}},
			})
		}

		clients := apiGroup.Group("/clients")
		clients.Use(am.RequireAuth(), admin)
		addRoutes(clients, []route{
			{Method: http.MethodGet, Path: "/:id/cuponeras", Handler: h.Coupon.ClientCuponeras},
		})

		me := apiGroup.Group("/me")
		me.Use(am.RequireAuth())
		{
			addRoutes(me, []route{
				{Method: http.MethodGet, Path: "/cuponeras", Handler: h.Coupon.MyCuponeras, Mw: []gin.HandlerFunc{anyClient}},
				{Method: http.MethodGet, Path: "/profile", Handler: h.Client.Profile, Mw: []gin.HandlerFunc{anyClient}},
				{Method: http.MethodPatch, Path: "/profile", Handler: h.Client.UpdateProfile, Mw: []gin.HandlerFunc{anyClient}},
				{Method: http.MethodGet, Path: "/favorites", Handler: h.Favorite.List, Mw: []gin.HandlerFunc{anyClient}},
				{Method: http.MethodGet, Path: "/favorites/ids", Handler: h.Favorite.ListIDs, Mw: []gin.HandlerFunc{anyClient}},
				{Method: http.MethodPost, Path: "/favorites/:actorId", Handler: h.Favorite.Add, Mw: []gin.HandlerFunc{anyClient}},
				{Method: http.MethodDelete, Path: "/favorites/:actorId", Handler: h.Favorite.Remove, Mw: []gin.HandlerFunc{anyClient}},
				{Method: http.MethodPost, Path: "/favorites/:actorId/toggle", Handler: h.Favorite.Toggle, Mw: []gin.HandlerFunc{anyClient}},
				{Method: http.MethodGet, Path: "/comments/:actorId", Handler: h.Comment.Mine, Mw: []gin.HandlerFunc{anyClient}},
				{Method: http.MethodPut, Path: "/comments/:actorId", Handler: h.Comment.UpsertMine, Mw: []gin.HandlerFunc{anyClient}},
				{Method: http.MethodDelete, Path: "/comments/:actorId", Handler: h.Comment.DeleteMine, Mw: []gin.HandlerFunc{anyClient}},
				{Method: http.MethodGet, Path: "/comments/:actorId/eligibility", Handler: h.Comment.Eligibility, Mw: []gin.HandlerFunc{anyClient}},

				{Method: http.MethodGet, Path: "/team", Handler: h.Actor.Team, Mw: []gin.HandlerFunc{anyActor}},
				{Method: http.MethodPut, Path: "/promotion", Handler: h.Actor.UpdatePromotion, Mw: []gin.HandlerFunc{localOrAdmin}},
				{Method: http.MethodPost, Path: "/staff", Handler: h.Actor.CreateStaff, Mw: []gin.HandlerFunc{localOrAdmin}},
				{Method: http.MethodGet, Path: "/redemptions", Handler: h.Redemption.ListMine, Mw: []gin.HandlerFunc{anyActor}},
			})
		}

		comments := apiGroup.Group("/comments")
		comments.Use(am.RequireAuth())
		addRoutes(comments, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Comment.Create, Mw: []gin.HandlerFunc{anyClient}},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Comment.Update, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Comment.Delete, Mw: []gin.HandlerFunc{admin}},
		})

		notifications := apiGroup.Group("/notifications")
		notifications.Use(am.RequireAuth())
		addRoutes(notifications, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Notification.Send, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodGet, Path: "", Handler: h.Notification.List},
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
