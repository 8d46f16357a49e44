package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// clientIDKey stores the editorial client named by the bearer token.
const clientIDKey = contextKey("clientID")

// GetClientIDFromContext returns the authenticated client id of the request.
func GetClientIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(clientIDKey)); exists {
		id, ok := v.(string)
		return id, ok && id != ""
	}
	return ClientIDFromCtx(c.Request.Context())
}

// ClientIDFromCtx returns the client id stored in ctx by AuthMiddleware.
func ClientIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(clientIDKey).(string)
	return id, ok && id != ""
}

func withClientID(c *gin.Context, clientID string) {
	c.Set(string(clientIDKey), clientID)
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), clientIDKey, clientID))
}
