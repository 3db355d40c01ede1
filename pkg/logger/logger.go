package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Options 日志初始化参数
type Options struct {
	Level     string // debug, info, warn, error
	Output    string // console, file, both
	Format    string // text, json
	FilePath  string
	Colorize  bool
	AddSource bool
}

var (
	defaultLogger *slog.Logger
	levelVar      = new(slog.LevelVar)
	mu            sync.Mutex
	logFile       *os.File
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

// Init 初始化全局日志
func Init(opts Options) error {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	levelVar.Set(level)

	var writers []io.Writer
	output := strings.ToLower(opts.Output)
	if output == "" {
		output = "console"
	}

	if output == "console" || output == "both" {
		writers = append(writers, os.Stdout)
	}

	if output == "file" || output == "both" {
		if opts.FilePath == "" {
			return fmt.Errorf("log file path is required for output %q", output)
		}
		if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		if logFile != nil {
			_ = logFile.Close()
		}
		logFile = f
		writers = append(writers, f)
	}

	if len(writers) == 0 {
		return fmt.Errorf("unknown log output: %s", opts.Output)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     levelVar,
		AddSource: opts.AddSource,
	}
	// 颜色只用于纯控制台文本输出,避免转义字符写进文件
	if opts.Colorize && output == "console" && !strings.EqualFold(opts.Format, "json") {
		handlerOpts.ReplaceAttr = colorizeLevel
	}

	w := io.MultiWriter(writers...)
	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, handlerOpts)
	case "", "text":
		handler = slog.NewTextHandler(w, handlerOpts)
	default:
		return fmt.Errorf("unknown log format: %s", opts.Format)
	}

	defaultLogger = slog.New(handler)
	return nil
}

// SetLevel 动态调整日志级别
func SetLevel(level string) error {
	l, err := parseLevel(level)
	if err != nil {
		return err
	}
	levelVar.Set(l)
	return nil
}

// L 返回底层 slog.Logger
func L() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if defaultLogger == nil {
		defaultLogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: levelVar}))
	}
	return defaultLogger
}

func Debug(msg string, args ...any) {
	L().Log(context.Background(), slog.LevelDebug, msg, SanitizeArgs(args...)...)
}

func Info(msg string, args ...any) {
	L().Log(context.Background(), slog.LevelInfo, msg, SanitizeArgs(args...)...)
}

func Warn(msg string, args ...any) {
	L().Log(context.Background(), slog.LevelWarn, msg, SanitizeArgs(args...)...)
}

func Error(msg string, args ...any) {
	L().Log(context.Background(), slog.LevelError, msg, SanitizeArgs(args...)...)
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", level)
	}
}

func colorizeLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	level, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}

	color := colorBlue
	switch {
	case level >= slog.LevelError:
		color = colorRed
	case level >= slog.LevelWarn:
		color = colorYellow
	case level < slog.LevelInfo:
		color = colorGray
	}
	return slog.String(a.Key, color+level.String()+colorReset)
}
