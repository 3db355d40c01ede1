package valueobjects

import "fmt"

// FileSize 文件大小值对象
type FileSize int64

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// NewFileSize 创建文件大小,负数按 0 处理
func NewFileSize(bytes int64) FileSize {
	if bytes < 0 {
		return 0
	}
	return FileSize(bytes)
}

// NewFileSizeFromMB 从 MB 创建文件大小
func NewFileSizeFromMB(mb int64) FileSize {
	return NewFileSize(mb << 20)
}

// Bytes 返回字节数
func (f FileSize) Bytes() int64 {
	return int64(f)
}

// IsZero 未设置大小(上传限制场景表示不限制)
func (f FileSize) IsZero() bool {
	return f == 0
}

// Exceeds 超过 limit 时返回 true,limit 为 0 表示不限制
func (f FileSize) Exceeds(limit FileSize) bool {
	return !limit.IsZero() && f > limit
}

// String 人类可读的大小,整数单位不带小数
func (f FileSize) String() string {
	size := float64(f)
	unit := 0
	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}

	if unit == 0 || size == float64(int64(size)) {
		return fmt.Sprintf("%d %s", int64(size), sizeUnits[unit])
	}
	return fmt.Sprintf("%.2f %s", size, sizeUnits[unit])
}
