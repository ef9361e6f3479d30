package middlewares

import (
	"time"

	"orderapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags every request with an id (taken from X-Request-ID when the
// client sends one) and logs it once the handler is done.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(utils.RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()

		status := c.Writer.Status()
		entry := log.WithFields(log.Fields{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"latency":    time.Since(start),
			"ip":         c.ClientIP(),
		})
		switch {
		case status >= 500:
			entry.Error("request handled")
		case status >= 400:
			entry.Warn("request handled")
		default:
			entry.Info("request handled")
		}
	}
}
