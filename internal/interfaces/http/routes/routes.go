package routes

import (
	"fmt"

	_ "github.com/easayliu/dvisual-upload/docs"
	"github.com/easayliu/dvisual-upload/internal/application/container"
	"github.com/easayliu/dvisual-upload/internal/domain/valueobjects"
	"github.com/easayliu/dvisual-upload/internal/infrastructure/config"
	"github.com/easayliu/dvisual-upload/internal/interfaces/http/handlers"
	"github.com/easayliu/dvisual-upload/internal/interfaces/http/middleware"
	"github.com/easayliu/dvisual-upload/web"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// multipartMemory 解析 multipart 时保存在内存中的上限,超出部分写临时文件
const multipartMemory = 8 << 20

// SetupRoutesWithContainer 使用ServiceContainer设置路由
func SetupRoutesWithContainer(c *container.ServiceContainer) (*gin.Engine, error) {
	cfg := c.GetConfig()

	router := gin.New()
	router.MaxMultipartMemory = multipartMemory

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	// 全局中间件
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.RecoverMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.ErrorHandlerMiddleware())

	// Swagger文档路由
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", handlers.HealthCheck)

	indexHandler := handlers.NewIndexHandler(c.GetAllowedExtensions(), valueobjects.NewFileSizeFromMB(cfg.Upload.MaxSizeMB))
	router.GET("/", indexHandler.Index)

	uploadHandler := handlers.NewUploadHandler(
		c.GetUploadService(),
		cfg.Upload.RedirectOnSuccess,
		cfg.Upload.Mode == config.UploadModeAll,
	)
	router.POST(handlers.UploadAPIPath,
		middleware.RateLimitMiddleware(c.GetUploadLimiter()),
		middleware.BodyLimitMiddleware(cfg.Upload.MaxSizeBytes()),
		uploadHandler.Upload,
	)

	fileHandler := handlers.NewUploadedFileHandler(c.GetStore())
	router.GET(handlers.UploadedFilePrefix+":filename", fileHandler.Get)

	return router, nil
}
