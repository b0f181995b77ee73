package middleware

import (
	"net/http"
	"strings"

	"staybook-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserIDKey = "userID"
	ctxRoleKey   = "role"
)

// RequireAuth validates the Bearer token and stores the caller's identity
// in the request context. Handlers read it back via CurrentUserID; the
// services always receive it as an explicit argument.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Not authorized, please login")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Not authorized, please login")
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

// CurrentUserID returns the authenticated caller's id, or 0 when the
// request did not pass RequireAuth.
func CurrentUserID(c *gin.Context) uint {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return 0
	}
	id, ok := v.(uint)
	if !ok {
		return 0
	}
	return id
}

// CurrentRole returns the caller's role claim.
func CurrentRole(c *gin.Context) string {
	return c.GetString(ctxRoleKey)
}
