package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/farellandr/eventportal/internal/monitoring"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id, exposes a request-scoped logger
// to handlers and logs the outcome.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(RequestIDHeader, requestID)

		reqLog := log.With(zap.String("request_id", requestID))
		c.Set("logger", reqLog)

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if s := GetSession(c); s != nil {
			fields = append(fields, zap.Int64("user_id", s.UserID))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			reqLog.Error("request completed", fields...)
		case status >= 400:
			reqLog.Warn("request completed", fields...)
		default:
			reqLog.Info("request completed", fields...)
		}
	}
}

// Metrics counts requests by route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		monitoring.RecordHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status())
	}
}
