package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS allows the browser presentation layer to call the API from any origin.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, If-None-Match, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "ETag, Server-Timing, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
