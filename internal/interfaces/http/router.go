package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartincident/internal/interfaces/http/middleware"
	"smartincident/internal/interfaces/http/routes"
)

// SetupRoutes installs global middleware and registers all route groups on
// the container's engine.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.RequestLogger(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Uploaded attachments are served straight from disk under the public
	// prefix recorded on each attachment row.
	c.engine.Static(c.cfg.Upload.PublicPrefix, c.cfg.Upload.Dir)

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler: c.hdlrs.authHandler,
		LoginLimit:  middleware.LoginRateLimit(c.loginLimiter, c.log),
	})

	routes.SetupUserRoutes(c.engine, &routes.UserRouteConfig{
		UserHandler:    c.hdlrs.userHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupCompanyRoutes(c.engine, &routes.CompanyRouteConfig{
		CompanyHandler: c.hdlrs.companyHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupIncidentRoutes(c.engine, &routes.IncidentRouteConfig{
		IncidentHandler: c.hdlrs.incidentHandler,
		AuthMiddleware:  c.authMiddleware,
	})

	routes.SetupTicketTypeRoutes(c.engine, &routes.TicketTypeRouteConfig{
		TicketTypeHandler: c.hdlrs.ticketTypeHandler,
		AuthMiddleware:    c.authMiddleware,
	})

	routes.SetupSettingRoutes(c.engine, &routes.SettingRouteConfig{
		SettingsHandler:  c.hdlrs.settingsHandler,
		DashboardHandler: c.hdlrs.dashboardHandler,
		AuthMiddleware:   c.authMiddleware,
	})

	routes.SetupUploadRoutes(c.engine, &routes.UploadRouteConfig{
		UploadHandler:  c.hdlrs.uploadHandler,
		AuthMiddleware: c.authMiddleware,
	})
}
