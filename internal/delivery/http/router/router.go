// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"steeple/config"
	"steeple/internal/delivery/http/middleware"
	"steeple/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	DeviceHandler       *handler.DeviceHandler
	NotificationHandler *handler.NotificationHandler
	AdminHandler        *handler.AdminHandler
	TestHandler         *handler.TestHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg                 *config.Config
	deviceHandler       *handler.DeviceHandler
	notificationHandler *handler.NotificationHandler
	adminHandler        *handler.AdminHandler
	testHandler         *handler.TestHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                 params.Config,
		deviceHandler:       params.DeviceHandler,
		notificationHandler: params.NotificationHandler,
		adminHandler:        params.AdminHandler,
		testHandler:         params.TestHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Device token routes that require authentication
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("/token", r.deviceHandler.RegisterToken)
		deviceGroup.GET("", r.deviceHandler.GetDevices)
		deviceGroup.DELETE("/:id", r.deviceHandler.RemoveDevice)
		deviceGroup.PATCH("/:id/notifications", r.deviceHandler.SetNotificationsEnabled)
	}

	// Inbox routes that require authentication
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("", r.notificationHandler.ListNotifications)
		notificationGroup.POST("/:id/read", r.notificationHandler.MarkRead)
	}

	// Admin job triggers require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.POST("/jobs/prune", r.adminHandler.TriggerTokenPrune)
		adminGroup.POST("/jobs/weekly-ranking", r.adminHandler.TriggerWeeklyRanking)
	}

	// Test routes for middleware validation, enabled per environment
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
		}
	}
}
