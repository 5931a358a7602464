package routes

import (
	"github.com/gin-gonic/gin"

	"smartincident/internal/interfaces/http/handlers"
	"smartincident/internal/interfaces/http/middleware"
	"smartincident/internal/shared/authorization"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	LoginLimit  gin.HandlerFunc
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", cfg.LoginLimit, cfg.AuthHandler.Login)
		auth.POST("/forgot-password", cfg.LoginLimit, cfg.AuthHandler.ForgotPassword)
		auth.PUT("/reset-password/:token", cfg.AuthHandler.ResetPassword)
	}
}

// UserRouteConfig holds dependencies for user management routes.
type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures user management routes.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.POST("", authorization.RequireSuperadmin(), cfg.UserHandler.Create)
		users.GET("", authorization.RequireSuperadmin(), cfg.UserHandler.List)

		// Must come before /:id to avoid route conflicts.
		users.GET("/me", cfg.UserHandler.Me)

		users.GET("/:id", cfg.UserHandler.Get)
		users.PUT("/:id", cfg.UserHandler.Update)
		users.DELETE("/:id", authorization.RequireSuperadmin(), cfg.UserHandler.Delete)
	}
}
