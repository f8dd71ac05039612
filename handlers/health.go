package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Ping handles GET /api/ping. It is side-effect-free and echoes the
// request host and path so a deployed instance can be identified.
func Ping(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		c.Header("Allow", http.MethodGet)
		c.JSON(http.StatusMethodNotAllowed, gin.H{"ok": false, "error": "method not allowed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "pong",
		"path":    c.Request.URL.Path,
		"host":    c.Request.Host,
		"ts":      time.Now().UTC().Format(time.RFC3339),
	})
}
