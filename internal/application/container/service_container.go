package container

import (
	"fmt"

	"github.com/easayliu/dvisual-upload/internal/application/services/upload"
	"github.com/easayliu/dvisual-upload/internal/domain/valueobjects"
	"github.com/easayliu/dvisual-upload/internal/infrastructure/config"
	"github.com/easayliu/dvisual-upload/internal/infrastructure/filesystem"
	"github.com/easayliu/dvisual-upload/internal/infrastructure/ratelimit"
	"github.com/easayliu/dvisual-upload/pkg/logger"
)

// ServiceContainer 服务容器 - 启动时一次性构建全部依赖
type ServiceContainer struct {
	config        *config.Config
	extensions    valueobjects.ExtensionSet
	store         *filesystem.LocalStore
	uploadService *upload.Service
	uploadLimiter *ratelimit.ClientLimiter
}

// NewServiceContainer 创建服务容器
func NewServiceContainer(cfg *config.Config) (*ServiceContainer, error) {
	logger.Info("Initializing service container")

	extensions := valueobjects.NewExtensionSet(cfg.Upload.AllowedExtensions...)
	if extensions.Len() == 0 {
		return nil, fmt.Errorf("no usable entries in upload.allowed_extensions")
	}

	store, err := filesystem.NewLocalStore(cfg.Upload.Dir)
	if err != nil {
		return nil, err
	}

	uploadService := upload.NewService(upload.Config{
		AllowedExtensions: extensions,
		StoreAll:          cfg.Upload.Mode == config.UploadModeAll,
	}, store)

	logger.Info("Upload service ready",
		"dir", store.Dir(),
		"allowed_extensions", extensions.Sorted(),
		"mode", cfg.Upload.Mode,
		"max_size", valueobjects.NewFileSizeFromMB(cfg.Upload.MaxSizeMB).String(),
		"rate_limit_qps", cfg.Upload.RateLimitQPS)

	return &ServiceContainer{
		config:        cfg,
		extensions:    extensions,
		store:         store,
		uploadService: uploadService,
		uploadLimiter: ratelimit.NewClientLimiter(cfg.Upload.RateLimitQPS),
	}, nil
}

// GetConfig 获取配置
func (c *ServiceContainer) GetConfig() *config.Config {
	return c.config
}

// GetAllowedExtensions 获取允许的扩展名集合
func (c *ServiceContainer) GetAllowedExtensions() valueobjects.ExtensionSet {
	return c.extensions
}

// GetStore 获取本地存储
func (c *ServiceContainer) GetStore() *filesystem.LocalStore {
	return c.store
}

// GetUploadService 获取上传服务
func (c *ServiceContainer) GetUploadService() *upload.Service {
	return c.uploadService
}

// GetUploadLimiter 获取上传限流器
func (c *ServiceContainer) GetUploadLimiter() *ratelimit.ClientLimiter {
	return c.uploadLimiter
}
