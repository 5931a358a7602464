package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"smartincident/internal/domain/user"
	"smartincident/internal/infrastructure/auth"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/logger"
	"smartincident/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, userRepo user.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and reloads the account on every
// request, so role or status changes take effect immediately rather than at
// token expiry.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		userID, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		u, err := m.userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			m.logger.Errorw("failed to load authenticated user", "user_id", userID, "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "authentication check failed")
			c.Abort()
			return
		}
		if u == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}
		if !u.IsActive() {
			utils.ErrorResponse(c, http.StatusForbidden, "account is inactive")
			c.Abort()
			return
		}

		c.Set(authorization.ContextActorKey, u.Actor())
		c.Set("user_id", u.ID())
		c.Set("user_name", u.Name())

		c.Next()
	}
}

// GetActor returns the authenticated actor placed by RequireAuth. ok is
// false on routes that skipped authentication.
func GetActor(c *gin.Context) (authorization.Actor, bool) {
	return authorization.ActorFromContext(c)
}

// GetUserName returns the authenticated user's display name.
func GetUserName(c *gin.Context) string {
	return c.GetString("user_name")
}
