package middleware

import (
	"net/http"

	"github.com/SscSPs/newswire_macros/internal/utils"
	"github.com/gin-gonic/gin"
)

// trackedRoutes names the usage event of each reported route. Macro runs are
// reported by their handler with the replacement count.
var trackedRoutes = map[string]string{
	"/api/v1/macros":             "currency_macros_listed",
	"/api/v1/locator":            "locator_mapped",
	"/api/v1/formatters/:format": "article_formatted",
}

// PosthogMiddleware reports successful requests to tracked routes.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, tracked := trackedRoutes[c.FullPath()]
		if !tracked || !posthogClient.IsInitialized() {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		props := map[string]any{"status_code": c.Writer.Status()}
		if format := c.Param("format"); format != "" {
			props["format"] = format
		}
		PosthogEvent(c, posthogClient, event, props)
	}
}

// PosthogEvent sends a custom event for the authenticated client of c.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if !posthogClient.IsInitialized() {
		return
	}

	clientID, ok := GetClientIDFromContext(c)
	if !ok {
		return
	}

	if properties == nil {
		properties = make(map[string]any)
	}
	properties["method"] = c.Request.Method
	properties["path"] = c.Request.URL.Path

	posthogClient.Capture(clientID, eventName, properties)
}
