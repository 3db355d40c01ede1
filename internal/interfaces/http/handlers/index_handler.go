package handlers

import (
	"net/http"

	"github.com/easayliu/dvisual-upload/internal/domain/valueobjects"
	"github.com/gin-gonic/gin"
)

// UploadAPIPath 上传接口路径,与旧版前端保持一致
const UploadAPIPath = "/fileUploadAPI"

// IndexHandler 首页处理器
type IndexHandler struct {
	extensions []string
	maxSize    valueobjects.FileSize
}

// NewIndexHandler 创建首页处理器
func NewIndexHandler(extensions valueobjects.ExtensionSet, maxSize valueobjects.FileSize) *IndexHandler {
	return &IndexHandler{
		extensions: extensions.Sorted(),
		maxSize:    maxSize,
	}
}

// Index 渲染上传页面
func (h *IndexHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":      "dvisual",
		"UploadURL":  UploadAPIPath,
		"Extensions": h.extensions,
		"MaxSize":    h.maxSize,
	})
}
