package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"brightstart/utils"
)

// AdminAuthMiddleware gates curation and appointment administration on a
// bearer token whose role claim is "admin". Token issuance lives in the
// auth service, not here.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		role, err := utils.ExtractRoleFromToken(tokenString)
		if err != nil || role != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("role", role)
		c.Set("isAdmin", true)
		c.Next()
	}
}
