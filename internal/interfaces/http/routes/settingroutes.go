package routes

import (
	"github.com/gin-gonic/gin"

	"smartincident/internal/interfaces/http/handlers"
	"smartincident/internal/interfaces/http/middleware"
	"smartincident/internal/shared/authorization"
)

// SettingRouteConfig holds dependencies for settings and dashboard routes.
type SettingRouteConfig struct {
	SettingsHandler  *handlers.SettingsHandler
	DashboardHandler *handlers.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupSettingRoutes configures mail settings and dashboard routes. Company
// admins may read the mail settings (with the password masked); only
// superadmins may change them or send probes.
func SetupSettingRoutes(engine *gin.Engine, cfg *SettingRouteConfig) {
	settings := engine.Group("/settings")
	settings.Use(cfg.AuthMiddleware.RequireAuth())
	{
		settings.GET("/notifications", cfg.SettingsHandler.Get)
		settings.PUT("/notifications", authorization.RequireSuperadmin(), cfg.SettingsHandler.Update)
		settings.POST("/notifications/test", authorization.RequireSuperadmin(), cfg.SettingsHandler.SendTestEmail)
	}

	dashboard := engine.Group("/dashboard")
	dashboard.Use(cfg.AuthMiddleware.RequireAuth())
	{
		dashboard.GET("", cfg.DashboardHandler.Get)
	}
}
