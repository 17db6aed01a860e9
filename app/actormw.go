package app

import (
	"net/http"

	"Gin_postgres_redis_toolshare/store"

	"github.com/gin-gonic/gin"
)

// ActorHeader names the acting user for a request. There is no login: one
// local person operates the dataset, and the header just says which known
// identity they act as. Absent header means the self user.
const ActorHeader = "X-Actor-Id"

// WithActor resolves the actor and puts its id into the request context.
// Unknown ids are rejected so every lifecycle operation sees a real member.
func WithActor(k *store.Keeper) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := k.Current()
		actor := c.GetHeader(ActorHeader)
		if actor == "" {
			actor = s.User.ID
		}
		if !s.KnownUser(actor) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unknown actor"})
			return
		}
		c.Set("actorID", actor)
		c.Next()
	}
}
