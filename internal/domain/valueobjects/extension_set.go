package valueobjects

import (
	"sort"
	"strings"
)

// ExtensionSet 允许上传的扩展名集合
// 不可变的值对象,启动时由配置构建,之后只读
type ExtensionSet struct {
	exts map[string]struct{}
}

// NewExtensionSet 创建扩展名集合
// 条目会去掉首尾空格和前导的点并转为小写,空条目忽略
func NewExtensionSet(exts ...string) ExtensionSet {
	set := ExtensionSet{exts: make(map[string]struct{}, len(exts))}
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" {
			continue
		}
		set.exts[ext] = struct{}{}
	}
	return set
}

// Contains 判断扩展名是否在集合中,大小写不敏感
func (s ExtensionSet) Contains(ext string) bool {
	_, ok := s.exts[strings.ToLower(ext)]
	return ok
}

// Allows 判断文件名是否带有允许的扩展名
func (s ExtensionSet) Allows(filename string) bool {
	ext, ok := Extension(filename)
	return ok && s.Contains(ext)
}

// Len 集合大小
func (s ExtensionSet) Len() int {
	return len(s.exts)
}

// Sorted 返回排序后的扩展名列表
func (s ExtensionSet) Sorted() []string {
	out := make([]string, 0, len(s.exts))
	for ext := range s.exts {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Extension 取最后一个点之后的部分
// 没有点时返回 false;以点结尾时返回空扩展名,空扩展名不会出现在任何集合中
func Extension(filename string) (string, bool) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return "", false
	}
	return filename[idx+1:], true
}
