package components

import (
	"savesphere/internal/handler"
	"savesphere/internal/handler/api"
	"savesphere/internal/handler/middleware"
	"savesphere/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDealHandler,
		api.NewHomeHandler,
		api.NewRedemptionHandler,
		api.NewNotificationHandler,
		api.NewUserHandler,
		api.NewVerificationHandler,
		NewIdentityMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewIdentityMiddleware(cfg config.Config) *middleware.IdentityMiddleware {
	return middleware.NewIdentityMiddleware(cfg.Catalog.DefaultUserID)
}

func newHandlers(
	deal *api.DealHandler,
	home *api.HomeHandler,
	redemption *api.RedemptionHandler,
	notification *api.NotificationHandler,
	user *api.UserHandler,
	verification *api.VerificationHandler,
) handler.Handlers {
	return handler.Handlers{
		Deal:         deal,
		Home:         home,
		Redemption:   redemption,
		Notification: notification,
		User:         user,
		Verification: verification,
	}
}
