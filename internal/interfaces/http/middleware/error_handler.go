package middleware

import (
	"github.com/easayliu/dvisual-upload/internal/shared/errors"
	"github.com/easayliu/dvisual-upload/pkg/httputil"
	"github.com/easayliu/dvisual-upload/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware 统一错误处理中间件
// handler 通过 c.Error 记录错误且尚未写响应时,转换为 {"result": false} 响应
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		httputil.Fail(c, c.Errors.Last().Err)
	}
}

// RecoverMiddleware 恢复中间件 - 捕获panic并转换为500错误
func RecoverMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered",
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
					"panic", err)
				httputil.FailWithCode(c, errors.ErrorCodeInternalError)
			}
		}()
		c.Next()
	}
}
