package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/easayliu/dvisual-upload/pkg/logger"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// LocalStore 把上传文件保存到上传目录
//
// 同名文件直接覆盖.写入先落到同目录下的临时文件,完成后 rename 到目标名,
// 并发写同一个名字时以最后一次 rename 为准,读者不会看到写了一半的文件.
type LocalStore struct {
	fs  afero.Fs
	dir string
}

// NewLocalStore 创建基于本地磁盘的存储,目录不存在时自动创建
func NewLocalStore(dir string) (*LocalStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload directory: %w", err)
	}
	return NewLocalStoreWithFs(afero.NewOsFs(), abs)
}

// NewLocalStoreWithFs 使用指定的文件系统创建存储
func NewLocalStoreWithFs(fs afero.Fs, dir string) (*LocalStore, error) {
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{fs: fs, dir: dir}, nil
}

// Dir 上传目录
func (s *LocalStore) Dir() string {
	return s.dir
}

// Path 返回文件名在上传目录下的完整路径,名字不是单个安全路径组件时报错
func (s *LocalStore) Path(name string) (string, error) {
	if !IsSafeFilename(name) {
		return "", fmt.Errorf("unsafe filename %q", name)
	}
	return filepath.Join(s.dir, name), nil
}

// Save 写入文件,返回最终路径
func (s *LocalStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	dst, err := s.Path(name)
	if err != nil {
		return "", err
	}

	tmp, err := afero.TempFile(s.fs, s.dir, ".upload-"+uuid.NewString()+"-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = s.fs.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, &contextReader{ctx: ctx, r: r}); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", name, err)
	}
	if err := s.fs.Chmod(tmpName, 0644); err != nil {
		return "", fmt.Errorf("failed to chmod %s: %w", name, err)
	}
	if err := s.fs.Rename(tmpName, dst); err != nil {
		return "", fmt.Errorf("failed to move %s into place: %w", name, err)
	}
	committed = true

	logger.Debug("File written", "path", dst)
	return dst, nil
}

// Open 打开已保存的文件,调用方负责关闭
func (s *LocalStore) Open(name string) (afero.File, os.FileInfo, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, nil, os.ErrNotExist
	}

	f, err := s.fs.Open(path)
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	if !info.Mode().IsRegular() {
		_ = f.Close()
		return nil, nil, os.ErrNotExist
	}
	return f, info, nil
}

// contextReader 每次读取前检查 context,客户端断开后尽快停止写盘
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
