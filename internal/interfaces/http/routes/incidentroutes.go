package routes

import (
	"github.com/gin-gonic/gin"

	"smartincident/internal/interfaces/http/handlers"
	"smartincident/internal/interfaces/http/middleware"
	"smartincident/internal/shared/authorization"
)

// IncidentRouteConfig holds dependencies for incident routes.
type IncidentRouteConfig struct {
	IncidentHandler *handlers.IncidentHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupIncidentRoutes configures incident and comment routes. Tenant scoping
// happens inside the use cases; only deletion is gated here.
func SetupIncidentRoutes(engine *gin.Engine, cfg *IncidentRouteConfig) {
	incidents := engine.Group("/incidents")
	incidents.Use(cfg.AuthMiddleware.RequireAuth())
	{
		incidents.POST("", cfg.IncidentHandler.Create)
		incidents.GET("", cfg.IncidentHandler.List)

		incidents.GET("/:id", cfg.IncidentHandler.Get)
		incidents.PUT("/:id", cfg.IncidentHandler.Update)
		incidents.DELETE("/:id", authorization.RequireSuperadmin(), cfg.IncidentHandler.Delete)

		incidents.POST("/:id/comments", cfg.IncidentHandler.AddComment)
		incidents.GET("/:id/comments", cfg.IncidentHandler.ListComments)
	}
}

// TicketTypeRouteConfig holds dependencies for ticket type routes.
type TicketTypeRouteConfig struct {
	TicketTypeHandler *handlers.TicketTypeHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupTicketTypeRoutes configures ticket type routes. Every authenticated
// role may browse the catalog; mutations are superadmin-only.
func SetupTicketTypeRoutes(engine *gin.Engine, cfg *TicketTypeRouteConfig) {
	types := engine.Group("/ticket-types")
	types.Use(cfg.AuthMiddleware.RequireAuth())
	{
		types.POST("", authorization.RequireSuperadmin(), cfg.TicketTypeHandler.Create)
		types.GET("", cfg.TicketTypeHandler.List)

		types.GET("/:id", cfg.TicketTypeHandler.Get)
		types.PUT("/:id", authorization.RequireSuperadmin(), cfg.TicketTypeHandler.Update)
		types.DELETE("/:id", authorization.RequireSuperadmin(), cfg.TicketTypeHandler.Delete)
	}
}
