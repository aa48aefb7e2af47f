// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lectern/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TeacherHandler *handler.TeacherHandler
	SessionHandler *handler.SessionHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	teacherHandler *handler.TeacherHandler
	sessionHandler *handler.SessionHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		teacherHandler: params.TeacherHandler,
		sessionHandler: params.SessionHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Teacher account and session lifecycle
	teacherGroup := e.Group("/teachers")
	{
		teacherGroup.POST("", r.teacherHandler.SignUp)
		teacherGroup.POST("/sign_in", r.sessionHandler.SignIn)
		teacherGroup.PATCH("/sign_in/:uuid/refresh", r.sessionHandler.Refresh)
		teacherGroup.DELETE("/sign_in/:uuid", r.sessionHandler.SignOut)
	}
}
