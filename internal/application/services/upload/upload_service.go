package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/easayliu/dvisual-upload/internal/domain/valueobjects"
	"github.com/easayliu/dvisual-upload/internal/infrastructure/filesystem"
	apperrors "github.com/easayliu/dvisual-upload/internal/shared/errors"
	"github.com/easayliu/dvisual-upload/pkg/logger"
)

// File 一个上传附件
type File struct {
	Filename string // 客户端提供的文件名,不可信
	Size     int64
	Open     func() (io.ReadCloser, error)
}

// Store 文件持久化接口
type Store interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

// Config 上传服务配置,启动时构建,之后不再修改
type Config struct {
	AllowedExtensions valueobjects.ExtensionSet
	// StoreAll 为 true 时保存全部合法文件;默认只保存第一个合法文件
	StoreAll bool
}

// FileOutcome 单个附件的处理结果
type FileOutcome struct {
	Filename string              `json:"filename"`
	Result   bool                `json:"result"`
	StoredAs string              `json:"stored_as,omitempty"`
	Code     apperrors.ErrorCode `json:"code,omitempty"`
	Error    string              `json:"error,omitempty"`
}

// Result 一次上传请求的结果
type Result struct {
	// Stored 第一个成功保存的文件名(已清理)
	Stored string
	// Files 已处理附件的逐个结果;默认模式下遇到第一个成功的文件就停止
	Files []FileOutcome
}

// Service 上传服务:校验附件并写入存储
type Service struct {
	cfg   Config
	store Store
}

// NewService 创建上传服务
func NewService(cfg Config, store Store) *Service {
	return &Service{
		cfg:   cfg,
		store: store,
	}
}

// AllowedExtensions 允许的扩展名
func (s *Service) AllowedExtensions() valueobjects.ExtensionSet {
	return s.cfg.AllowedExtensions
}

// FromMultipart 把 multipart 表单中的 file 字段转换为附件列表
// 文件名为空的 file 部分会被 mime/multipart 当作普通字段放进 values,
// 这里还原成空文件名的附件,以便统一走 EmptyFilename 检查
func FromMultipart(headers []*multipart.FileHeader, values []string) []File {
	files := make([]File, 0, len(headers)+len(values))
	for _, fh := range headers {
		files = append(files, File{
			Filename: fh.Filename,
			Size:     fh.Size,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}
	for range values {
		files = append(files, File{})
	}
	return files
}

// Handle 处理一次上传
//
// 1. 没有附件 -> NoFileProvided
// 2. 任一附件文件名为空 -> EmptyFilename,此时不写任何文件
// 3. 扩展名不在允许列表 -> 跳过该附件
// 4. 合法附件用清理后的文件名写入存储,同名覆盖
// 5. 默认模式下第一个写入成功的文件即返回;一个都没有写入时返回失败
func (s *Service) Handle(ctx context.Context, files []File) (*Result, error) {
	if len(files) == 0 {
		return nil, apperrors.New(apperrors.ErrorCodeNoFileProvided)
	}

	for _, f := range files {
		if f.Filename == "" {
			return nil, apperrors.New(apperrors.ErrorCodeEmptyFilename)
		}
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	var firstErr *apperrors.ServiceError

	for _, f := range files {
		outcome, err := s.handleFile(ctx, f)
		result.Files = append(result.Files, outcome)

		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			// 默认模式下写盘失败直接结束本次请求
			if err.Code == apperrors.ErrorCodeStorageError && !s.cfg.StoreAll {
				return nil, err
			}
			continue
		}

		if result.Stored == "" {
			result.Stored = outcome.StoredAs
		}
		if !s.cfg.StoreAll {
			break
		}
	}

	if result.Stored == "" {
		if firstErr == nil {
			firstErr = apperrors.New(apperrors.ErrorCodeDisallowedExtension)
		}
		return nil, firstErr
	}

	return result, nil
}

func (s *Service) handleFile(ctx context.Context, f File) (FileOutcome, *apperrors.ServiceError) {
	outcome := FileOutcome{Filename: f.Filename}

	reject := func(svcErr *apperrors.ServiceError) (FileOutcome, *apperrors.ServiceError) {
		outcome.Code = svcErr.Code
		outcome.Error = svcErr.Message
		return outcome, svcErr
	}

	if !s.cfg.AllowedExtensions.Allows(f.Filename) {
		logger.Info("Rejected upload with disallowed extension", "filename", f.Filename)
		return reject(apperrors.NewServiceErrorWithDetails(apperrors.ErrorCodeDisallowedExtension,
			map[string]interface{}{"filename": f.Filename}))
	}

	name := filesystem.SanitizeFilename(f.Filename)
	// 清理可能去掉扩展名,例如 "日本.txt" -> "txt",需要再检查一次
	if name == "" || !s.cfg.AllowedExtensions.Allows(name) {
		logger.Info("Rejected upload whose sanitized name lost its extension", "filename", f.Filename, "sanitized", name)
		return reject(apperrors.NewServiceErrorWithDetails(apperrors.ErrorCodeDisallowedExtension,
			map[string]interface{}{"filename": f.Filename}))
	}

	if err := s.save(ctx, name, f); err != nil {
		logger.Error("Failed to store upload", "filename", f.Filename, "stored_as", name, "error", err)
		return reject(apperrors.NewServiceErrorWithCause(apperrors.ErrorCodeStorageError, err))
	}

	logger.Info("Upload stored", "filename", f.Filename, "stored_as", name, "size", valueobjects.NewFileSize(f.Size).String())
	outcome.Result = true
	outcome.StoredAs = name
	return outcome, nil
}

func (s *Service) save(ctx context.Context, name string, f File) error {
	if f.Open == nil {
		return fmt.Errorf("attachment %s has no content", name)
	}
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open attachment: %w", err)
	}
	defer rc.Close()

	if _, err := s.store.Save(ctx, name, rc); err != nil {
		return err
	}
	return nil
}
