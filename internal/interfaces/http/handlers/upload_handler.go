package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/easayliu/dvisual-upload/internal/application/services/upload"
	apperrors "github.com/easayliu/dvisual-upload/internal/shared/errors"
	"github.com/easayliu/dvisual-upload/pkg/httputil"
	"github.com/easayliu/dvisual-upload/pkg/logger"
	"github.com/gin-gonic/gin"
)

// UploadFormField 上传文件使用的表单字段名,可重复
const UploadFormField = "file"

// UploadedFilePrefix 已保存文件的访问路径前缀
const UploadedFilePrefix = "/uploads/"

// UploadResponse 上传成功响应
type UploadResponse struct {
	Result   bool                 `json:"result"`
	Filename string               `json:"filename"`
	URL      string               `json:"url"`
	Files    []upload.FileOutcome `json:"files,omitempty"`
}

// UploadHandler 文件上传处理器
type UploadHandler struct {
	service           *upload.Service
	redirectOnSuccess bool
	reportAll         bool
}

// NewUploadHandler 创建上传处理器
func NewUploadHandler(service *upload.Service, redirectOnSuccess, reportAll bool) *UploadHandler {
	return &UploadHandler{
		service:           service,
		redirectOnSuccess: redirectOnSuccess,
		reportAll:         reportAll,
	}
}

// Upload 上传文件
// @Summary 上传文件
// @Description 校验扩展名后把文件保存到上传目录.默认只保存第一个合法文件,成功时 303 跳转到文件地址
// @Tags 上传
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "要上传的文件,可重复"
// @Success 200 {object} UploadResponse "上传成功(未开启跳转时)"
// @Success 303 {object} UploadResponse "上传成功,Location 指向已保存的文件"
// @Failure 400 {object} httputil.ErrorResponse "没有文件或文件名为空"
// @Failure 413 {object} httputil.ErrorResponse "请求体过大"
// @Failure 415 {object} httputil.ErrorResponse "没有允许的文件类型"
// @Failure 500 {object} httputil.ErrorResponse "保存失败"
// @Router /fileUploadAPI [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		if isBodyTooLarge(err) {
			logger.Warn("Upload body too large", "ip", c.ClientIP(), "error", err)
			httputil.FailWithCode(c, apperrors.ErrorCodeRequestTooLarge)
			return
		}
		// 不是 multipart 请求,等同于没有 file 字段
		logger.Debug("Upload without multipart form", "error", err)
		httputil.FailWithCode(c, apperrors.ErrorCodeNoFileProvided)
		return
	}
	defer func() {
		if err := form.RemoveAll(); err != nil {
			logger.Warn("Failed to remove multipart temp files", "error", err)
		}
	}()

	files := upload.FromMultipart(form.File[UploadFormField], form.Value[UploadFormField])
	result, err := h.service.Handle(c.Request.Context(), files)
	if err != nil {
		httputil.Fail(c, err)
		return
	}

	location := StoredFileURL(result.Stored)
	resp := UploadResponse{
		Result:   true,
		Filename: result.Stored,
		URL:      location,
	}
	if h.reportAll {
		resp.Files = result.Files
	}

	if h.redirectOnSuccess {
		c.Header("Location", location)
		c.JSON(http.StatusSeeOther, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// StoredFileURL 已保存文件的访问地址
func StoredFileURL(name string) string {
	return UploadedFilePrefix + url.PathEscape(name)
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	// 部分 multipart 解析路径不保留原始错误类型
	return strings.Contains(err.Error(), "request body too large")
}
