package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/finance_tracker/internal/utils"
	"github.com/gin-gonic/gin"
)

var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware reports each successful authenticated request as a product
// analytics event named after its route, e.g. "api_v1_dashboard_summary".
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		eventName := eventNameForRoute(c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		// query values carry sort and window choices, never personal data
		for _, key := range []string{"sortBy", "sortDir", "months", "top"} {
			if v := c.Query(key); v != "" {
				props[key] = v
			}
		}
		posthogClient.Enqueue(userID, eventName, props)
	}
}

func eventNameForRoute(fullPath string) string {
	name := strings.TrimPrefix(fullPath, "/")
	name = strings.ReplaceAll(name, "/:", "_by_")
	return strings.ReplaceAll(name, "/", "_")
}
