// File: lokseva/middleware/session.go
package middleware

import (
	"net/http"
	"strings"

	"lokseva/models"
	"lokseva/services/user"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "lokseva_session"

// ExtractSessionToken pulls the session token from the session cookie or a
// Bearer Authorization header.
func ExtractSessionToken(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
		return token
	}
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// AdminOnlyMiddleware restricts a route group to authenticated admins.
func AdminOnlyMiddleware(userService user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractSessionToken(c)
		session, err := userService.SessionInfo(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to resolve session.",
			})
			return
		}
		if session == nil || session.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Admin access required.",
			})
			return
		}
		c.Set("session", session)
		c.Next()
	}
}
