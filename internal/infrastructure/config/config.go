package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	UploadModeFirst = "first" // 只保存第一个合法文件
	UploadModeAll   = "all"   // 保存全部合法文件并逐个汇报
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Upload UploadConfig `mapstructure:"upload"`
	CORS   CORSConfig   `mapstructure:"cors"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type LogConfig struct {
	Level     string `mapstructure:"level"`
	Output    string `mapstructure:"output"`
	Format    string `mapstructure:"format"`
	FilePath  string `mapstructure:"file_path"`
	Colorize  bool   `mapstructure:"colorize"`
	AddSource bool   `mapstructure:"add_source"`
}

type UploadConfig struct {
	Dir               string   `mapstructure:"dir"`
	AllowedExtensions []string `mapstructure:"allowed_extensions"`
	MaxSizeMB         int64    `mapstructure:"max_size_mb"`       // 0 表示不限制
	Mode              string   `mapstructure:"mode"`              // first 或 all
	RedirectOnSuccess bool     `mapstructure:"redirect_on_success"`
	RateLimitQPS      int      `mapstructure:"rate_limit_qps"` // 上传接口每秒请求数，0 表示不限制
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// MaxSizeBytes 上传请求体大小上限
func (u UploadConfig) MaxSizeBytes() int64 {
	return u.MaxSizeMB << 20
}

// Address 监听地址
func (s ServerConfig) Address() string {
	return s.Host + ":" + s.Port
}

func LoadConfig() (*Config, error) {
	// .env 不存在时忽略,环境变量仍然生效
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvPrefix("DVISUAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return decode(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.output", "console")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file_path", "./logs/server.log")
	v.SetDefault("log.colorize", true)
	v.SetDefault("log.add_source", false)

	v.SetDefault("upload.dir", "./uploads")
	v.SetDefault("upload.allowed_extensions", []string{"txt", "json", "csv"})
	v.SetDefault("upload.max_size_mb", 16)
	v.SetDefault("upload.mode", UploadModeFirst)
	v.SetDefault("upload.redirect_on_success", true)
	v.SetDefault("upload.rate_limit_qps", 0)

	v.SetDefault("cors.allowed_origins", []string{})
}

func decode(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// 环境变量里的列表是逗号分隔的单个字符串
	config.Upload.AllowedExtensions = splitList(config.Upload.AllowedExtensions)
	config.CORS.AllowedOrigins = splitList(config.CORS.AllowedOrigins)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}
	if strings.TrimSpace(c.Upload.Dir) == "" {
		return fmt.Errorf("upload.dir is required")
	}
	if len(c.Upload.AllowedExtensions) == 0 {
		return fmt.Errorf("upload.allowed_extensions must not be empty")
	}
	if c.Upload.MaxSizeMB < 0 {
		return fmt.Errorf("upload.max_size_mb must not be negative")
	}
	if c.Upload.RateLimitQPS < 0 {
		return fmt.Errorf("upload.rate_limit_qps must not be negative")
	}
	switch c.Upload.Mode {
	case UploadModeFirst, UploadModeAll:
	default:
		return fmt.Errorf("upload.mode must be %q or %q, got %q", UploadModeFirst, UploadModeAll, c.Upload.Mode)
	}
	return nil
}

func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
