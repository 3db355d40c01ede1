package middleware

import (
	"github.com/easayliu/dvisual-upload/internal/infrastructure/ratelimit"
	"github.com/easayliu/dvisual-upload/internal/shared/errors"
	"github.com/easayliu/dvisual-upload/pkg/httputil"
	"github.com/easayliu/dvisual-upload/pkg/logger"
	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware 按客户端IP限流,超限返回 429
func RateLimitMiddleware(limiter *ratelimit.ClientLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			logger.Warn("Rate limit exceeded", "ip", c.ClientIP(), "path", c.Request.URL.Path)
			httputil.FailWithCode(c, errors.ErrorCodeRateLimit)
			return
		}
		c.Next()
	}
}
