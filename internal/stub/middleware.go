package stub

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func authRequired(jwt *jwtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			respondError(c, http.StatusUnauthorized, "missing or invalid authorization header")
			c.Abort()
			return
		}
		claims, err := jwt.ValidateToken(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			respondError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}
		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func requireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		respondError(c, http.StatusForbidden, "access denied: insufficient permissions")
		c.Abort()
	}
}
