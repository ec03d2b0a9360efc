package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminKeyMiddleware gates administrator-only mutations (currently the
// settings update) behind an X-Admin-Key header checked against a bcrypt
// hash from configuration. When no hash is configured the gate refuses
// everything rather than failing open.
func AdminKeyMiddleware(adminKeyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		if adminKeyHash == "" {
			logger.Error("Admin key hash not configured; refusing admin operation")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin operations are not configured"})
			return
		}

		key := c.GetHeader("X-Admin-Key")
		if key == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "X-Admin-Key header required"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(adminKeyHash), []byte(key)); err != nil {
			logger.Warn("Admin key mismatch")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid admin key"})
			return
		}

		c.Next()
	}
}
