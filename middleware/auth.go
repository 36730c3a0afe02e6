package middleware

import (
	"net/http"
	"strings"

	"blogapi/utils"

	"github.com/gin-gonic/gin"
)

// AuthRequired gates the admin surface behind a bearer token.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = authHeader[7:]
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "No token provided"})
			return
		}

		userID, err := utils.ValidateJWT(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "Invalid token"})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
