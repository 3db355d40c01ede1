package logger

import (
	"strings"
)

// sensitiveKeys 日志中需要脱敏的键名关键字
// 请求日志会带上部分请求头,这里主要防止凭证类头部落盘
var sensitiveKeys = []string{
	"authorization",
	"cookie",
	"token",
	"secret",
	"password",
	"api_key",
	"apikey",
}

// MaskToken 脱敏字符串
// 规则:
//   - 空字符串返回空
//   - 长度<8: 返回 "***"
//   - 长度>=8: 保留前4后4,中间用星号替换
func MaskToken(token string) string {
	if token == "" {
		return ""
	}

	length := len(token)
	if length < 8 {
		return "***"
	}

	return token[:4] + strings.Repeat("*", length-8) + token[length-4:]
}

// IsSensitiveKey 判断键名是否为敏感字段
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, sk := range sensitiveKeys {
		if strings.Contains(keyLower, sk) {
			return true
		}
	}
	return false
}

// SanitizeValue 根据键名判断是否需要脱敏
func SanitizeValue(key string, value any) any {
	if !IsSensitiveKey(key) {
		return value
	}
	if s, ok := value.(string); ok {
		return MaskToken(s)
	}
	return "***MASKED***"
}

// SanitizeArgs 批量脱敏slog键值对参数
func SanitizeArgs(args ...any) []any {
	if len(args) == 0 {
		return args
	}

	result := make([]any, len(args))
	for i := 0; i < len(args); i += 2 {
		result[i] = args[i]
		if i+1 >= len(args) {
			break
		}
		if key, ok := args[i].(string); ok {
			result[i+1] = SanitizeValue(key, args[i+1])
		} else {
			result[i+1] = args[i+1]
		}
	}

	return result
}
