// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cabby/internal/delivery/http/middleware"
	"cabby/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	accounts := e.Group("/accounts")
	{
		accounts.GET("", r.accountHandler.Index)
		accounts.POST("/sign-in", r.accountHandler.SignIn)
	}

	// Session-holding routes
	me := accounts.Group("/me")
	me.Use(r.authMiddleware.Authenticate)
	{
		me.GET("", r.accountHandler.Me)
	}

	// Admin routes guarded by the shared admin token
	admin := accounts.Group("/admin")
	admin.Use(r.authMiddleware.RequireAdminToken)
	{
		admin.POST("/create-user", r.accountHandler.CreateUser)
	}
}
