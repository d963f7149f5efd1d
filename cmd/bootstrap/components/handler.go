package components

import (
	"cuponera-backend/internal/handler"
	"cuponera-backend/internal/handler/api"
	"cuponera-backend/internal/handler/middleware"
	"cuponera-backend/internal/infra/metrics"
	"cuponera-backend/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewActorHandler,
		api.NewBatchHandler,
		api.NewBusinessRequestHandler,
		api.NewCatalogHandler,
		api.NewClientHandler,
		api.NewCommentHandler,
		api.NewCouponHandler,
		api.NewFavoriteHandler,
		api.NewNotificationHandler,
		api.NewOTPHandler,
		api.NewRedemptionHandler,
		api.NewShareHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(registerRoutes),
)

type routerParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Metrics        *metrics.Metrics
	AuthMiddleware *middleware.AuthMiddleware

	Auth         *api.AuthHandler
	Actor        *api.ActorHandler
	Batch        *api.BatchHandler
	Catalog      *api.CatalogHandler
	Client       *api.ClientHandler
	Comment      *api.CommentHandler
	Coupon       *api.CouponHandler
	Favorite     *api.FavoriteHandler
	Notification *api.NotificationHandler
	OTP          *api.OTPHandler
	Redemption   *api.RedemptionHandler
	Requests     *api.BusinessRequestHandler
	Share        *api.ShareHandler
}

func registerRoutes(p routerParams) {
	handler.NewRouter(p.Engine, p.Config, p.Metrics, handler.Handlers{
		Auth:         p.Auth,
		Batch:        p.Batch,
		Coupon:       p.Coupon,
		Redemption:   p.Redemption,
		Actor:        p.Actor,
		Client:       p.Client,
		Comment:      p.Comment,
		Favorite:     p.Favorite,
		Share:        p.Share,
		Notification: p.Notification,
		Catalog:      p.Catalog,
		OTP:          p.OTP,
		Requests:     p.Requests,
	}, p.AuthMiddleware)
}
