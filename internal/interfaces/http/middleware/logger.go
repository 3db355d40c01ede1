package middleware

import (
	"time"

	"github.com/easayliu/dvisual-upload/pkg/logger"
	"github.com/gin-gonic/gin"
)

// LoggerMiddleware 每个请求记录一行结构化日志
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"request_id", GetRequestID(c),
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"bytes", c.Writer.Size(),
			"ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
		}
		if auth := c.GetHeader("Authorization"); auth != "" {
			args = append(args, "authorization", auth)
		}
		if len(c.Errors) > 0 {
			args = append(args, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			logger.Error("Request completed", args...)
		case status >= 400:
			logger.Warn("Request completed", args...)
		default:
			logger.Info("Request completed", args...)
		}
	}
}
