package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// boardMethods are the verbs the dashboard API answers to.
const boardMethods = "GET, POST, DELETE, OPTIONS"

// corsMiddleware lets a separately hosted board frontend (a kiosk page or
// an e-ink renderer) read the board and trigger refreshes.
func corsMiddleware(allowed []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin, ok := resolveOrigin(c.GetHeader("Origin"), allowed)
		headers := c.Writer.Header()
		if ok {
			headers.Set("Access-Control-Allow-Origin", origin)
			headers.Set("Access-Control-Allow-Methods", boardMethods)
			headers.Set("Access-Control-Allow-Headers", "Content-Type")
			if origin != "*" {
				headers.Add("Vary", "Origin")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// resolveOrigin returns the value for Access-Control-Allow-Origin. No list
// means any origin; otherwise only listed origins are echoed back.
func resolveOrigin(requestOrigin string, allowed []string) (string, bool) {
	if len(allowed) == 0 {
		return "*", true
	}
	for _, candidate := range allowed {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return "*", true
		}
		if requestOrigin != "" && strings.EqualFold(candidate, requestOrigin) {
			return requestOrigin, true
		}
	}
	return "", false
}
