package routes

import (
	"github.com/gin-gonic/gin"

	"smartincident/internal/interfaces/http/handlers"
	"smartincident/internal/interfaces/http/middleware"
	"smartincident/internal/shared/authorization"
)

// CompanyRouteConfig holds dependencies for company management routes.
type CompanyRouteConfig struct {
	CompanyHandler *handlers.CompanyHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCompanyRoutes configures company management routes. Mutations are
// restricted to superadmins at the route level; reads are tenant-scoped
// inside the use cases.
func SetupCompanyRoutes(engine *gin.Engine, cfg *CompanyRouteConfig) {
	companies := engine.Group("/companies")
	companies.Use(cfg.AuthMiddleware.RequireAuth())
	{
		companies.POST("", authorization.RequireSuperadmin(), cfg.CompanyHandler.Create)
		companies.GET("", cfg.CompanyHandler.List)

		companies.GET("/:id", cfg.CompanyHandler.Get)
		companies.PUT("/:id", authorization.RequireSuperadmin(), cfg.CompanyHandler.Update)
		companies.DELETE("/:id", authorization.RequireSuperadmin(), cfg.CompanyHandler.Delete)
	}
}
