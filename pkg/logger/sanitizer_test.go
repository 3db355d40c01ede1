package logger

import (
	"testing"
)

func TestMaskToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "空字符串", input: "", want: ""},
		{name: "短值(<8字符)", input: "abc", want: "***"},
		{name: "正好8字符", input: "12345678", want: "12345678"},
		{name: "长值(16字符)", input: "1234567890abcdef", want: "1234********cdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskToken(tt.input); got != tt.want {
				t.Errorf("MaskToken() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSanitizeValue(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
		want  any
	}{
		{name: "文件名不脱敏", key: "filename", value: "notes.csv", want: "notes.csv"},
		{name: "Authorization头脱敏", key: "authorization", value: "Bearer abcdefgh1234", want: "Bear***********1234"},
		{name: "Cookie脱敏", key: "Cookie", value: "session=1", want: "sess*on=1"},
		{name: "大小写不敏感", key: "X-Upload-Token", value: "token123456789", want: "toke******6789"},
		{name: "非字符串值", key: "secret", value: 42, want: "***MASKED***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeValue(tt.key, tt.value); got != tt.want {
				t.Errorf("SanitizeValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSanitizeArgs(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want []any
	}{
		{
			name: "空参数",
			args: []any{},
			want: []any{},
		},
		{
			name: "无敏感信息",
			args: []any{"path", "/fileUploadAPI", "status", 303},
			want: []any{"path", "/fileUploadAPI", "status", 303},
		},
		{
			name: "包含authorization",
			args: []any{"path", "/", "authorization", "1234567890abcdef"},
			want: []any{"path", "/", "authorization", "1234********cdef"},
		},
		{
			name: "奇数参数",
			args: []any{"path", "/", "cookie"},
			want: []any{"path", "/", "cookie"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeArgs(tt.args...)
			if len(got) != len(tt.want) {
				t.Fatalf("SanitizeArgs() length = %v, want %v", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SanitizeArgs()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestIsSensitiveKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"authorization", true},
		{"Cookie", true},
		{"X-Api-Key", false},
		{"api_key", true},
		{"filename", false},
		{"request_id", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := IsSensitiveKey(tt.key); got != tt.want {
				t.Errorf("IsSensitiveKey(%s) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func BenchmarkSanitizeArgs(b *testing.B) {
	args := []any{
		"method", "POST",
		"path", "/fileUploadAPI",
		"authorization", "Bearer 1234567890abcdef",
	}
	for i := 0; i < b.N; i++ {
		SanitizeArgs(args...)
	}
}
