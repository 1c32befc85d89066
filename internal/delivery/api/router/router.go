// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"keygate/internal/delivery/api/middleware"
	"keygate/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AdminHandler    *handler.AdminHandler
	LicenseHandler  *handler.LicenseHandler
	SettingsHandler *handler.SettingsHandler
	VerifyHandler   *handler.VerifyHandler
	AdminAuth       *middleware.AdminAuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	adminHandler    *handler.AdminHandler
	licenseHandler  *handler.LicenseHandler
	settingsHandler *handler.SettingsHandler
	verifyHandler   *handler.VerifyHandler
	adminAuth       *middleware.AdminAuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		adminHandler:    params.AdminHandler,
		licenseHandler:  params.LicenseHandler,
		settingsHandler: params.SettingsHandler,
		verifyHandler:   params.VerifyHandler,
		adminAuth:       params.AdminAuth,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.HealthCheck)

	api := e.Group("/api")

	// Public
	api.POST("/verify-license", r.verifyHandler.Verify)
	api.POST("/admin/login", r.adminHandler.Login)
	api.GET("/admin/session", r.adminHandler.Session)
	api.POST("/admin/logout", r.adminHandler.Logout)

	adminGroup := api.Group("/admin", r.adminAuth.RequireSession)
	{
		adminGroup.GET("/settings", r.settingsHandler.Get)
		adminGroup.POST("/settings", r.settingsHandler.Save)
		adminGroup.POST("/smtp/test", r.settingsHandler.TestMail)
		adminGroup.GET("/templates", r.settingsHandler.Templates)
	}

	licensesGroup := api.Group("/licenses", r.adminAuth.RequireSession)
	{
		licensesGroup.GET("", r.licenseHandler.List)
		licensesGroup.POST("", r.licenseHandler.Create)
		licensesGroup.GET("/stats", r.licenseHandler.Stats)
		licensesGroup.GET("/:id", r.licenseHandler.Get)
		licensesGroup.PUT("/:id", r.licenseHandler.Update)
		licensesGroup.DELETE("/:id", r.licenseHandler.Delete)
		licensesGroup.POST("/:id/revoke", r.licenseHandler.Revoke)
		licensesGroup.POST("/:id/activate", r.licenseHandler.Activate)
		licensesGroup.GET("/:id/qrcode", r.licenseHandler.QRCode)
	}
}
