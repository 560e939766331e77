package local

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cosstore/pkg/storage"
)

var ErrInvalidKey = errors.New("invalid key: path traversal attempt")

// Config 本地存储配置
type Config struct {
	RootPath string `mapstructure:"root_path"` // 文件存储的物理根目录，例如: "./uploads"
	BaseURL  string `mapstructure:"base_url"`  // 外网访问的基础URL，例如: "http://localhost:8080/uploads"
	BasePath string `mapstructure:"base_path"`
}

type Provider struct {
	root   string
	layout storage.Layout
	now    func() time.Time
}

func NewProvider(c Config) (*Provider, error) {
	// 更新为绝对路径，防止后续工作目录切换导致问题
	absPath, err := filepath.Abs(c.RootPath)
	if err != nil {
		return nil, fmt.Errorf("local abs path failed: %w", err)
	}
	if err := os.MkdirAll(absPath, 0755); err != nil {
		return nil, fmt.Errorf("local mkdir failed: %w", err)
	}
	return &Provider{
		root:   absPath,
		layout: storage.NewLayout(c.BasePath, c.BaseURL),
		now:    time.Now,
	}, nil
}

var _ storage.Provider = (*Provider)(nil)

func (p *Provider) Upload(ctx context.Context, file storage.File) (storage.File, error) {
	return p.save(file, bytes.NewReader(file.Buffer))
}

func (p *Provider) UploadStream(ctx context.Context, file storage.File) (storage.File, error) {
	body := file.Stream
	if body == nil {
		body = bytes.NewReader(nil)
	}
	return p.save(file, body)
}

// os.Create 不支持 Context 取消，本地写入通常很快，这里不做处理
func (p *Provider) save(file storage.File, body io.Reader) (storage.File, error) {
	key := p.layout.Key(p.now(), file.Name)
	fullPath, err := p.fullPath(p.layout.ObjectName(key))
	if err != nil {
		return storage.File{}, err
	}

	// 确保该文件所在的父目录存在
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return storage.File{}, fmt.Errorf("local mkdir failed: %w", err)
	}
	dst, err := os.Create(fullPath)
	if err != nil {
		return storage.File{}, fmt.Errorf("local create file failed: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, body); err != nil {
		return storage.File{}, fmt.Errorf("local write failed: %w", err)
	}
	file.URL = p.layout.PublicURL(key)
	return file, nil
}

// Delete 和其他厂商一样只用 URL 的最后一段作为 key
func (p *Provider) Delete(ctx context.Context, file storage.File) (storage.File, error) {
	fullPath, err := p.fullPath(p.layout.KeyFromURL(file.URL))
	if err != nil {
		return storage.File{}, err
	}
	err = os.Remove(fullPath)
	// 如果文件本来就不存在，通常视为删除成功，不报错
	if err != nil && !os.IsNotExist(err) {
		return storage.File{}, fmt.Errorf("local delete failed: %w", err)
	}
	file.URL = ""
	return file, nil
}

// fullPath 拼接后的路径必须落在 root 里面，文件名本身带 ".." 是允许的
func (p *Provider) fullPath(key string) (string, error) {
	full := filepath.Join(p.root, key)
	rel, err := filepath.Rel(p.root, full)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrInvalidKey
	}
	return full, nil
}

func (p *Provider) CheckFileSize(file storage.File, opts storage.SizeOptions) error {
	return storage.CheckFileSize(file, opts)
}

func (p *Provider) GetSignedURL(ctx context.Context, file storage.File) (storage.SignedURL, error) {
	return p.layout.SignedURL(file.URL), nil
}

func (p *Provider) IsPrivate() bool {
	return false
}
