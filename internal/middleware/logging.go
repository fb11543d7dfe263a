// internal/middleware/logging.go
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every request with a generated request id and replaces
// gin's default logger.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		entry := log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   duration.Milliseconds(),
			"ip":         c.ClientIP(),
		})

		if identity, ok := IdentityFromContext(c); ok {
			entry = entry.WithField("user_id", identity.UserID)
		}

		if c.Writer.Status() >= 500 {
			entry.Error("Request processed")
		} else {
			entry.Info("Request processed")
		}
	}
}
