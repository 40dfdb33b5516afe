package middleware

import (
	"time"

	"blog-api/helper"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogger tags every request with an id and writes one access log line
// when the request completes.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(helper.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(helper.RequestIDKey, requestID)
		c.Header(helper.RequestIDHeader, requestID)

		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("clientIp", c.ClientIP()),
			zap.String("requestId", requestID),
		)
	}
}
