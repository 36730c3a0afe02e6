package middleware

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS allows the configured frontend origins to call the API. Origins come
// from CORS_ALLOWED_ORIGINS as a comma-separated list; an unlisted origin
// gets no Allow-Origin header.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestOrigin := c.GetHeader("Origin")

		for _, origin := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
			if strings.TrimSpace(origin) == requestOrigin && requestOrigin != "" {
				c.Header("Access-Control-Allow-Origin", requestOrigin)
				break
			}
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
