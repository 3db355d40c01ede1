package filesystem

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MaxFilenameLength 单个文件名的最大字节数,与常见文件系统一致
const MaxFilenameLength = 255

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.\-]`)

var reservedNames = buildReservedNamesMap()

// buildReservedNamesMap 构建Windows保留名称映射表
func buildReservedNamesMap() map[string]bool {
	reserved := []string{
		"CON", "PRN", "AUX", "NUL",
		"COM1", "COM2", "COM3", "COM4", "COM5",
		"COM6", "COM7", "COM8", "COM9",
		"LPT1", "LPT2", "LPT3", "LPT4", "LPT5",
		"LPT6", "LPT7", "LPT8", "LPT9",
	}

	reservedMap := make(map[string]bool, len(reserved))
	for _, name := range reserved {
		reservedMap[name] = true
	}
	return reservedMap
}

// SanitizeFilename 将客户端提供的文件名转换为可以直接拼接到上传目录下的安全文件名
//
// 结果只包含 ASCII 字母、数字、'_'、'.'、'-',不含路径分隔符,
// 首尾不会是 '.' 或 '_',因此不可能是 "." 或 "..".
// 全部字符都被过滤掉时返回空字符串,调用方需要拒绝这种情况.
func SanitizeFilename(name string) string {
	// 兼容字符分解后丢弃非ASCII部分,例如 "é" -> "e"
	name = norm.NFKD.String(name)
	name = strings.Map(func(r rune) rune {
		if r >= utf8.RuneSelf {
			return -1
		}
		return r
	}, name)

	name = strings.NewReplacer("/", " ", "\\", " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")

	if name == "" {
		return ""
	}

	base := name
	if idx := strings.Index(base, "."); idx >= 0 {
		base = base[:idx]
	}
	if reservedNames[strings.ToUpper(base)] {
		name = "_" + name
	}

	return truncateFilename(name)
}

// IsSafeFilename 判断名字是否已经是 SanitizeFilename 的输出形式
func IsSafeFilename(name string) bool {
	return name != "" && SanitizeFilename(name) == name
}

// truncateFilename 超长时截断主文件名,尽量保留扩展名
func truncateFilename(name string) string {
	if len(name) <= MaxFilenameLength {
		return name
	}

	ext := filepath.Ext(name)
	if len(ext) >= MaxFilenameLength/2 {
		return strings.TrimRight(name[:MaxFilenameLength], "._")
	}
	stem := strings.TrimRight(name[:MaxFilenameLength-len(ext)], "._")
	return stem + ext
}
