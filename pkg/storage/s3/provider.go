package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"cosstore/pkg/logger"
	"cosstore/pkg/storage"

	// 引入 minio 官方库，它对 S3 协议的支持非常好且易用
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config 专门针对 S3 兼容存储的配置
type Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	BucketName      string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"` // AWS 必须，MinIO 可选

	BasePath   string `mapstructure:"base_path"`
	BaseOrigin string `mapstructure:"base_origin"` // 自定义外部访问域名（比如 CDN）
}

type Provider struct {
	client *minio.Client
	bucket string
	layout storage.Layout
	l      logger.Logger
	now    func() time.Time
}

// NewProvider 显式构造函数
func NewProvider(c Config, l logger.Logger) (*Provider, error) {
	client, err := minio.New(c.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.AccessKeyID, c.SecretAccessKey, ""),
		Secure: c.UseSSL,
		Region: c.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new client: %w", err)
	}

	if c.BaseOrigin == "" {
		c.BaseOrigin = defaultOrigin(c)
	}
	return &Provider{
		client: client,
		bucket: c.BucketName,
		layout: storage.NewLayout(c.BasePath, c.BaseOrigin),
		l:      l,
		now:    time.Now,
	}, nil
}

// 没有 CDN 的时候走 path style: <scheme>://<endpoint>/<bucket>
func defaultOrigin(c Config) string {
	scheme := "http"
	if c.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, strings.TrimRight(c.Endpoint, "/"), c.BucketName)
}

// 编译时检查：确保 Provider 实现了 storage.Provider 接口
var _ storage.Provider = (*Provider)(nil)

func (p *Provider) Upload(ctx context.Context, file storage.File) (storage.File, error) {
	key := p.layout.Key(p.now(), file.Name)
	if err := p.put(ctx, key, bytes.NewReader(file.Buffer), int64(len(file.Buffer)), file.Mime); err != nil {
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
	// -1 表示长度未知，SDK 会自己缓冲
	if err := p.put(ctx, key, body, -1, file.Mime); err != nil {
		return storage.File{}, err
	}
	file.URL = p.layout.PublicURL(key)
	return file, nil
}

func (p *Provider) put(ctx context.Context, key string, body io.Reader, size int64, mime string) error {
	_, err := p.client.PutObject(ctx, p.bucket, p.layout.ObjectName(key), body, size, minio.PutObjectOptions{
		ContentType: mime,
	})
	if err != nil {
		p.l.Error(ctx, "S3 上传失败", logger.String("key", key), logger.Error(err))
		return err
	}
	return nil
}

func (p *Provider) Delete(ctx context.Context, file storage.File) (storage.File, error) {
	key := p.layout.KeyFromURL(file.URL)
	err := p.client.RemoveObject(ctx, p.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		p.l.Error(ctx, "S3 删除失败", logger.String("key", key), logger.Error(err))
		return storage.File{}, err
	}
	file.URL = ""
	return file, nil
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
