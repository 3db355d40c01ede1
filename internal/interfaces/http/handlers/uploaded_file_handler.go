package handlers

import (
	"net/http"
	"os"

	"github.com/easayliu/dvisual-upload/internal/infrastructure/filesystem"
	apperrors "github.com/easayliu/dvisual-upload/internal/shared/errors"
	"github.com/easayliu/dvisual-upload/pkg/httputil"
	"github.com/easayliu/dvisual-upload/pkg/logger"
	"github.com/gin-gonic/gin"
)

// UploadedFileHandler 已保存文件的访问处理器
type UploadedFileHandler struct {
	store *filesystem.LocalStore
}

// NewUploadedFileHandler 创建处理器
func NewUploadedFileHandler(store *filesystem.LocalStore) *UploadedFileHandler {
	return &UploadedFileHandler{store: store}
}

// Get 读取已保存的文件
// @Summary 读取已上传文件
// @Description 上传成功后跳转到的地址
// @Tags 上传
// @Produce octet-stream
// @Param filename path string true "保存后的文件名"
// @Success 200 {file} file
// @Failure 404 {object} httputil.ErrorResponse "文件不存在"
// @Router /uploads/{filename} [get]
func (h *UploadedFileHandler) Get(c *gin.Context) {
	name := c.Param("filename")

	f, info, err := h.store.Open(name)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Error("Failed to open stored file", "filename", name, "error", err)
		}
		httputil.FailWithCode(c, apperrors.ErrorCodeNotFound)
		return
	}
	defer f.Close()

	c.Header("X-Content-Type-Options", "nosniff")
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}
