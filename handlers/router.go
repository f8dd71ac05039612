package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sarang-church/backend/config"
	"github.com/sarang-church/backend/middleware"
)

// NewRouter assembles the full request surface: CORS and preflight for
// /api, the news and health endpoints, JSON 404/500 for unmatched or
// crashing API routes, and static-asset fallback for everything else.
func NewRouter(cfg *config.Config, store NewsStore) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		logrus.WithField("panic", err).Error("handler crashed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal server error"})
	}))
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"ok": false, "error": "method not allowed"})
	})

	news := NewNewsHandler(store)
	export := NewExportHandler(store)

	api := r.Group("/api")
	api.Any("/ping", Ping)
	api.GET("/news", news.List)

	admin := api.Group("", middleware.AdminAuth(cfg.AdminToken))
	admin.POST("/news", news.Create)
	admin.PUT("/news", news.ReplaceAll)
	admin.GET("/news/export", export.Download)
	admin.PUT("/news/:id", news.Update)
	admin.PATCH("/news/:id", news.Update)
	admin.DELETE("/news/:id", news.Delete)

	// Anything outside /api is a static asset of the site build.
	staticServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.NoRoute(func(c *gin.Context) {
		if p := c.Request.URL.Path; p == "/api" || strings.HasPrefix(p, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
			return
		}
		staticServer.ServeHTTP(c.Writer, c.Request)
	})

	return r
}
