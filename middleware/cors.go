package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	allowMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	allowHeaders = "Content-Type, Accept, Authorization, X-Admin-Token"
	maxAge       = "86400"
)

// CORS sets the cross-origin headers on every /api response and
// short-circuits preflight requests with an empty 204. An allow-listed
// Origin is echoed back; anything else gets the wildcard. Non-API paths
// (static assets) pass through untouched.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return func(c *gin.Context) {
		// exact segment match: /apifoo is a static asset, not an API path
		if p := c.Request.URL.Path; p != "/api" && !strings.HasPrefix(p, "/api/") {
			c.Next()
			return
		}

		allowOrigin := "*"
		if origin := c.GetHeader("Origin"); allowed[origin] {
			allowOrigin = origin
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", allowOrigin)
		h.Set("Access-Control-Allow-Methods", allowMethods)
		h.Set("Access-Control-Allow-Headers", allowHeaders)
		h.Set("Access-Control-Max-Age", maxAge)
		// shared caches must not serve one origin's headers to another
		h.Add("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		// API responses are never cacheable
		h.Set("Cache-Control", "no-store")
		c.Next()
	}
}
