package httputil

import (
	"errors"

	apperrors "github.com/easayliu/dvisual-upload/internal/shared/errors"
	"github.com/easayliu/dvisual-upload/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ErrorResponse 失败响应,前端只依赖 result 和 error 两个字段
type ErrorResponse struct {
	Result  bool                   `json:"result"`
	Error   string                 `json:"error"`
	Code    apperrors.ErrorCode    `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Fail 把错误转换为 {"result": false, ...} 响应并中止后续处理
func Fail(c *gin.Context, err error) {
	var svcErr *apperrors.ServiceError
	if !errors.As(err, &svcErr) {
		logger.Error("Unhandled error", "path", c.Request.URL.Path, "error", err)
		svcErr = apperrors.NewServiceErrorWithCause(apperrors.ErrorCodeInternalError, err)
	}

	c.AbortWithStatusJSON(apperrors.HTTPStatus(svcErr.Code), ErrorResponse{
		Result:  false,
		Error:   svcErr.Message,
		Code:    svcErr.Code,
		Details: svcErr.Details,
	})
}

// FailWithCode 使用错误码的默认消息返回失败响应
func FailWithCode(c *gin.Context, code apperrors.ErrorCode) {
	Fail(c, apperrors.New(code))
}
