package oss

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"cosstore/pkg/logger"
	"cosstore/pkg/storage"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// Config 阿里云 OSS 专属配置
type Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	AccessKeySecret string `mapstructure:"access_key_secret"`
	BucketName      string `mapstructure:"bucket"`

	BasePath string `mapstructure:"base_path"`
	// BaseOrigin 是自定义域名（例如绑定了 CDN 的域名）
	// 如果为空，则默认使用阿里云的标准 Bucket 域名
	BaseOrigin string `mapstructure:"base_origin"`
	// UseCname Endpoint 本身就是绑定到 bucket 的自定义域名
	UseCname bool `mapstructure:"use_cname"`
}

type Provider struct {
	bucket *oss.Bucket
	layout storage.Layout
	l      logger.Logger
	now    func() time.Time
}

// NewProvider 初始化阿里云 OSS 客户端
func NewProvider(c Config, l logger.Logger) (*Provider, error) {
	// 1. 创建 Client
	client, err := oss.New(c.Endpoint, c.AccessKeyID, c.AccessKeySecret, oss.UseCname(c.UseCname))
	if err != nil {
		return nil, fmt.Errorf("oss init client failed: %w", err)
	}

	// 2. 获取 Bucket 实例 (注意：这里只是获取句柄，不会发生网络请求)
	bucket, err := client.Bucket(c.BucketName)
	if err != nil {
		return nil, fmt.Errorf("oss get bucket failed: %w", err)
	}

	if c.BaseOrigin == "" {
		c.BaseOrigin = defaultOrigin(c)
	}
	return &Provider{
		bucket: bucket,
		layout: storage.NewLayout(c.BasePath, c.BaseOrigin),
		l:      l,
		now:    time.Now,
	}, nil
}

// 默认格式: https://<bucket>.<endpoint>
func defaultOrigin(c Config) string {
	host := removeProtocol(c.Endpoint)
	if c.UseCname {
		return "https://" + host
	}
	return fmt.Sprintf("https://%s.%s", c.BucketName, host)
}

// 辅助函数：移除 endpoint 中的 http:// 或 https://
func removeProtocol(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err == nil && u.Scheme != "" {
		return u.Host
	}
	return endpoint
}

// 编译期检查接口实现
var _ storage.Provider = (*Provider)(nil)

func (p *Provider) Upload(ctx context.Context, file storage.File) (storage.File, error) {
	key := p.layout.Key(p.now(), file.Name)
	// 阿里云建议明确设置 ContentLength，否则可能会采用分片上传或内存缓冲
	err := p.put(ctx, key, bytes.NewReader(file.Buffer), file.Mime, oss.ContentLength(int64(len(file.Buffer))))
	if err != nil {
		return storage.File{}, err
	}
	file.URL = p.layout.PublicURL(key)
	return file, nil
}

func (p *Provider) UploadStream(ctx context.Context, file storage.File) (storage.File, error) {
	key := p.layout.Key(p.now(), file.Name)
	body := file.Stream
	if body == nil {
		body = bytes.NewReader(nil)
	}
	if err := p.put(ctx, key, body, file.Mime); err != nil {
		return storage.File{}, err
	}
	file.URL = p.layout.PublicURL(key)
	return file, nil
}

func (p *Provider) put(ctx context.Context, key string, body io.Reader, mime string, extra ...oss.Option) error {
	// oss.WithContext 让 SDK 感知上下文（超时/取消）
	options := append([]oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(mime),
	}, extra...)
	err := p.bucket.PutObject(p.layout.ObjectName(key), body, options...)
	if err != nil {
		p.l.Error(ctx, "OSS 上传失败", logger.String("key", key), logger.Error(err))
		return err
	}
	return nil
}

func (p *Provider) Delete(ctx context.Context, file storage.File) (storage.File, error) {
	key := p.layout.KeyFromURL(file.URL)
	err := p.bucket.DeleteObject(key, oss.WithContext(ctx))
	if err != nil {
		p.l.Error(ctx, "OSS 删除失败", logger.String("key", key), logger.Error(err))
		return storage.File{}, err
	}
	file.URL = ""
	return file, nil
}

func (p *Provider) CheckFileSize(file storage.File, opts storage.SizeOptions) error {
	return storage.CheckFileSize(file, opts)
}

// GetSignedURL 和 COS 保持一致，只拼接地址
// 需要 OSS 原生签名的话用 bucket.SignURL
func (p *Provider) GetSignedURL(ctx context.Context, file storage.File) (storage.SignedURL, error) {
	return p.layout.SignedURL(file.URL), nil
}

func (p *Provider) IsPrivate() bool {
	return false
}
