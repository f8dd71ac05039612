package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/sarang-church/backend/middleware"
)

func corsEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CORS([]string{"https://www.sarangch.or.kr", "http://localhost:3000"}))
	r.GET("/api/news", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/assets/app.js", func(c *gin.Context) {
		c.String(http.StatusOK, "js")
	})
	r.GET("/apidocs.html", func(c *gin.Context) {
		c.String(http.StatusOK, "docs")
	})
	return r
}

func TestCORS_AllowedOriginEchoed(t *testing.T) {
	r := corsEngine()

	for _, origin := range []string{"https://www.sarangch.or.kr", "http://localhost:3000"} {
		req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"))
		require.Contains(t, w.Header().Values("Vary"), "Origin")
	}
}

func TestCORS_UnknownOriginGetsWildcard(t *testing.T) {
	r := corsEngine()

	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	r := corsEngine()

	req := httptest.NewRequest(http.MethodOptions, "/api/news", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.String())
	require.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
	require.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
	require.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-Admin-Token")
	// preflight answers are cacheable; Max-Age governs them, not no-store
	require.Empty(t, w.Header().Get("Cache-Control"))
}

func TestCORS_NonAPIPathUntouched(t *testing.T) {
	r := corsEngine()

	// /apidocs.html shares the letters but not the /api segment
	for _, path := range []string{"/assets/app.js", "/apidocs.html"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, path)
		require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"), path)
	}
}
