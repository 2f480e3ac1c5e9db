// Package router wires the API routes to their middleware chains and handlers.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"budget/internal/delivery/api/middleware"
	"budget/internal/delivery/api/router/handler"
	"budget/internal/domain/entity"
)

// RouterParams holds the handlers and middleware the routes are built from.
type RouterParams struct {
	fx.In

	HealthHandler       *handler.HealthHandler
	SessionHandler      *handler.SessionHandler
	UserHandler         *handler.UserHandler
	PlaceHandler        *handler.PlaceHandler
	TransactionHandler  *handler.TransactionHandler
	AuthMiddleware      *middleware.AuthMiddleware
	AuthDelayMiddleware *middleware.AuthDelayMiddleware
	ValidationMW        *middleware.ValidationMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler      *handler.HealthHandler
	sessionHandler     *handler.SessionHandler
	userHandler        *handler.UserHandler
	placeHandler       *handler.PlaceHandler
	transactionHandler *handler.TransactionHandler
	auth               *middleware.AuthMiddleware
	authDelay          *middleware.AuthDelayMiddleware
	validation         *middleware.ValidationMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:      params.HealthHandler,
		sessionHandler:     params.SessionHandler,
		userHandler:        params.UserHandler,
		placeHandler:       params.PlaceHandler,
		transactionHandler: params.TransactionHandler,
		auth:               params.AuthMiddleware,
		authDelay:          params.AuthDelayMiddleware,
		validation:         params.ValidationMW,
	}
}

// validate returns the validation gate of a route.
func (r *router) validate(route string) echo.MiddlewareFunc {
	return r.validation.Validate(schemas[route])
}

// RegisterRoutes sets up all the API routes under /api.
//
// Protected routes authenticate first, so anonymous callers always get 401,
// then validate, then check roles or ownership.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	health := api.Group("/health")
	{
		health.GET("/ping", r.healthHandler.Ping, r.validate(routeHealthPing))
		health.GET("/version", r.healthHandler.Version, r.validate(routeHealthVersion))
	}

	sessions := api.Group("/sessions")
	{
		sessions.POST("", r.sessionHandler.Login, r.authDelay.Guard, r.validate(routeSessionLogin))
	}

	requireAdmin := r.auth.RequireRole(entity.RoleAdmin)
	selfOrAdmin := r.auth.RequireOwnershipOrRole(entity.RoleAdmin, "id")

	users := api.Group("/users")
	{
		users.POST("", r.userHandler.Register, r.authDelay.Guard, r.validate(routeUserRegister))
		users.GET("", r.userHandler.List, r.auth.Authenticate, r.validate(routeUserList), requireAdmin)
		users.GET("/:id", r.userHandler.Get, r.auth.Authenticate, r.validate(routeUserGet), selfOrAdmin)
		users.PUT("/:id", r.userHandler.Update, r.auth.Authenticate, r.validate(routeUserUpdate), selfOrAdmin)
		users.DELETE("/:id", r.userHandler.Delete, r.auth.Authenticate, r.validate(routeUserDelete), selfOrAdmin)
		users.GET("/:id/transactions", r.userHandler.Transactions,
			r.auth.Authenticate, r.validate(routeUserTransactions), selfOrAdmin)
	}

	places := api.Group("/places", r.auth.Authenticate)
	{
		places.GET("", r.placeHandler.List, r.validate(routePlaceList))
		places.GET("/:id", r.placeHandler.Get, r.validate(routePlaceGet))
		places.POST("", r.placeHandler.Create, r.validate(routePlaceCreate), requireAdmin)
		places.PUT("/:id", r.placeHandler.Update, r.validate(routePlaceUpdate), requireAdmin)
		places.DELETE("/:id", r.placeHandler.Delete, r.validate(routePlaceDelete), requireAdmin)
		places.GET("/:id/transactions", r.placeHandler.Transactions, r.validate(routePlaceTransactions))
	}

	transactions := api.Group("/transactions", r.auth.Authenticate)
	{
		transactions.GET("", r.transactionHandler.List, r.validate(routeTransactionList))
		transactions.GET("/:id", r.transactionHandler.Get, r.validate(routeTransactionGet))
		transactions.POST("", r.transactionHandler.Create, r.validate(routeTransactionCreate))
		transactions.PUT("/:id", r.transactionHandler.Update, r.validate(routeTransactionUpdate))
		transactions.DELETE("/:id", r.transactionHandler.Delete, r.validate(routeTransactionDelete))
	}
}
