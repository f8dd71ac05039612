package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminResult is the outcome of checking the admin token.
type AdminResult int

const (
	AdminOK AdminResult = iota
	AdminMissing
	AdminInvalid
	AdminMisconfigured
)

// CheckAdminToken compares the caller-supplied token against the server
// secret. An unset secret fails closed as misconfigured.
func CheckAdminToken(secret, provided string) AdminResult {
	if secret == "" {
		return AdminMisconfigured
	}
	if provided == "" {
		return AdminMissing
	}
	if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
		return AdminInvalid
	}
	return AdminOK
}

// AdminAuth guards mutating endpoints with the shared admin token. The
// token comes from X-Admin-Token or an Authorization bearer.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Admin-Token")
		if token == "" {
			if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		switch CheckAdminToken(secret, token) {
		case AdminMisconfigured:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "admin token not configured"})
		case AdminMissing:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing admin token"})
		case AdminInvalid:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"ok": false, "error": "invalid admin token"})
		default:
			c.Next()
		}
	}
}
