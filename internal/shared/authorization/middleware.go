package authorization

import (
	"github.com/gin-gonic/gin"
)

// ContextActorKey is the gin context key under which the auth middleware
// stores the resolved Actor.
const ContextActorKey = "actor"

// ActorFromContext returns the authenticated actor set by the auth middleware.
func ActorFromContext(c *gin.Context) (Actor, bool) {
	v, ok := c.Get(ContextActorKey)
	if !ok {
		return Actor{}, false
	}
	actor, ok := v.(Actor)
	return actor, ok
}

// RequireSuperadmin rejects any request whose actor is not a superadmin.
func RequireSuperadmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok || !actor.Role.IsSuperadmin() {
			c.JSON(403, gin.H{
				"success": false,
				"error":   gin.H{"type": "forbidden", "message": "superadmin access required"},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
