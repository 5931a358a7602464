package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartincident/internal/infrastructure/ratelimit"
	"smartincident/internal/shared/logger"
	"smartincident/internal/shared/utils"
)

// LoginRateLimit throttles login attempts per client IP. When Redis is
// unreachable the request passes through; losing throttling is preferable
// to locking everyone out.
func LoginRateLimit(limiter *ratelimit.LoginLimiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warnw("login rate limit check failed", "client_ip", c.ClientIP(), "error", err)
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many login attempts, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
