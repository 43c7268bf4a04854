// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"identity/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IdentityHandler *handler.IdentityHandler
}

// Router holds all the handlers that need to be registered.
type Router struct {
	identityHandler *handler.IdentityHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *Router {
	return &Router{
		identityHandler: params.IdentityHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.identityHandler.Register)
		authGroup.POST("/login", r.identityHandler.Login)
		authGroup.POST("/verify", r.identityHandler.VerifyToken)
	}
}
