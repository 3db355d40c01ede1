package errors

import "net/http"

// ErrorCode 上传错误码
type ErrorCode string

const (
	ErrorCodeNoFileProvided      ErrorCode = "NO_FILE_PROVIDED"
	ErrorCodeEmptyFilename       ErrorCode = "EMPTY_FILENAME"
	ErrorCodeDisallowedExtension ErrorCode = "DISALLOWED_EXTENSION"
	ErrorCodeStorageError        ErrorCode = "STORAGE_ERROR"
	ErrorCodeRequestTooLarge     ErrorCode = "REQUEST_TOO_LARGE"
	ErrorCodeNotFound            ErrorCode = "NOT_FOUND"
	ErrorCodeRateLimit           ErrorCode = "RATE_LIMIT"
	ErrorCodeInternalError       ErrorCode = "INTERNAL_ERROR"
)

// 各错误码对外展示的消息,前两条与旧版前端约定一致,不能改
var defaultMessages = map[ErrorCode]string{
	ErrorCodeNoFileProvided:      "No File Found",
	ErrorCodeEmptyFilename:       "No file selected",
	ErrorCodeDisallowedExtension: "File type not allowed",
	ErrorCodeStorageError:        "Failed to store file",
	ErrorCodeRequestTooLarge:     "File too large",
	ErrorCodeNotFound:            "File not found",
	ErrorCodeRateLimit:           "Too many requests",
	ErrorCodeInternalError:       "Internal server error",
}

// 哨兵错误,配合 errors.Is 使用
var (
	ErrNoFileProvided      = New(ErrorCodeNoFileProvided)
	ErrEmptyFilename       = New(ErrorCodeEmptyFilename)
	ErrDisallowedExtension = New(ErrorCodeDisallowedExtension)
	ErrStorage             = New(ErrorCodeStorageError)
	ErrRequestTooLarge     = New(ErrorCodeRequestTooLarge)
)

// ServiceError 业务错误
type ServiceError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.Cause.Error()
	}
	return string(e.Code) + ": " + e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// Is 按错误码比较,使 errors.Is(err, ErrStorage) 对任意 STORAGE_ERROR 成立
func (e *ServiceError) Is(target error) bool {
	t, ok := target.(*ServiceError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New 使用默认消息创建业务错误
func New(code ErrorCode) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: MessageFor(code),
	}
}

// NewServiceError 创建业务错误
func NewServiceError(code ErrorCode, message string) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
	}
}

// NewServiceErrorWithCause 创建带原因的业务错误
func NewServiceErrorWithCause(code ErrorCode, cause error) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: MessageFor(code),
		Cause:   cause,
	}
}

// NewServiceErrorWithDetails 创建带详情的业务错误
func NewServiceErrorWithDetails(code ErrorCode, details map[string]interface{}) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: MessageFor(code),
		Details: details,
	}
}

// MessageFor 错误码对应的默认消息
func MessageFor(code ErrorCode) string {
	if msg, ok := defaultMessages[code]; ok {
		return msg
	}
	return defaultMessages[ErrorCodeInternalError]
}

// HTTPStatus 将业务错误码映射到HTTP状态码
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrorCodeNoFileProvided, ErrorCodeEmptyFilename:
		return http.StatusBadRequest
	case ErrorCodeDisallowedExtension:
		return http.StatusUnsupportedMediaType
	case ErrorCodeRequestTooLarge:
		return http.StatusRequestEntityTooLarge
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeRateLimit:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
