// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"parcel/config"
	"parcel/internal/delivery/api/middleware"
	"parcel/internal/delivery/api/router/handler"
	"parcel/internal/domain/entity"
	"parcel/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	PackageHandler      *handler.PackageHandler
	ProductHandler      *handler.ProductHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Metrics             *metrics.Metrics
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	packageHandler      *handler.PackageHandler
	productHandler      *handler.ProductHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
	metrics             *metrics.Metrics
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		packageHandler:      params.PackageHandler,
		productHandler:      params.ProductHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
		metrics:             params.Metrics,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.authMiddleware.Authenticate
	admin := r.authMiddleware.RequireRole(entity.RoleAdmin)
	recipient := r.authMiddleware.RequireRole(entity.RoleRecipient)
	deliveryman := r.authMiddleware.RequireRole(entity.RoleDeliveryman)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	accounts := e.Group("/accounts")
	{
		accounts.POST("/admin", r.accountHandler.RegisterAdmin)
		accounts.POST("/recipient", r.accountHandler.RegisterRecipient)
		accounts.POST("/sessions", r.accountHandler.Authenticate)

		accounts.POST("/deliveryman", r.accountHandler.RegisterDeliveryman, auth, admin)
		accounts.PUT("/change-password", r.accountHandler.ChangePassword, auth)
		accounts.PUT("/deliveryman/change-password", r.accountHandler.ChangeDeliverymanPassword, auth, admin)
		accounts.PUT("/change-location", r.accountHandler.ChangeLocation, auth,
			r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleRecipient))
		accounts.DELETE("/:id", r.accountHandler.Delete, auth,
			r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleRecipient))
		accounts.POST("/find-by-admin", r.accountHandler.FetchByAdmin, auth, admin)
	}

	packages := e.Group("/package", auth)
	{
		packages.POST("", r.packageHandler.Create, recipient)
		packages.PATCH("/deliver", r.packageHandler.Deliver, deliveryman)
		packages.PATCH("/available-pickup", r.packageHandler.MarkAvailableForPickup, deliveryman)
		packages.PATCH("/pickup", r.packageHandler.Pickup, deliveryman)
		packages.PATCH("/return", r.packageHandler.Return, recipient)
		packages.PATCH("/cancel", r.packageHandler.Cancel, recipient)
		packages.POST("/track", r.packageHandler.Track)
		packages.GET("/:id/label", r.packageHandler.Label,
			r.authMiddleware.RequireRole(entity.RoleRecipient, entity.RoleDeliveryman))
	}

	notifications := e.Group("/notification", auth, admin)
	{
		notifications.POST("/list", r.notificationHandler.List)
	}

	products := e.Group("/product", auth)
	{
		products.POST("", r.productHandler.Create, admin)
		products.POST("/fetch", r.productHandler.Fetch)
	}
}

// RegisterMetricsRoute exposes the prometheus registry when metrics are enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}
