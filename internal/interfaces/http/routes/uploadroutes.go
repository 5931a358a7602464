package routes

import (
	"github.com/gin-gonic/gin"

	"smartincident/internal/interfaces/http/handlers"
	"smartincident/internal/interfaces/http/middleware"
)

// UploadRouteConfig holds dependencies for the standalone upload route.
type UploadRouteConfig struct {
	UploadHandler  *handlers.UploadHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUploadRoutes registers the generic file intake endpoint.
func SetupUploadRoutes(engine *gin.Engine, cfg *UploadRouteConfig) {
	engine.POST("/upload", cfg.AuthMiddleware.RequireAuth(), cfg.UploadHandler.Upload)
}
