package cos

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cosstore/pkg/logger"
	"cosstore/pkg/storage"

	cossdk "github.com/tencentyun/cos-go-sdk-v5"
)

// DefaultBaseOrigin 腾讯云 COS 的默认访问域名
// {Bucket} / {Region} 不会被替换，需要的话请显式配置 BaseOrigin
const DefaultBaseOrigin = "https://{Bucket}.cos.{Region}.myqcloud.com"

// Config 腾讯云 COS 专属配置
type Config struct {
	SecretID  string `mapstructure:"secret_id"`  // 在 COS 控制台获取的 SecretId
	SecretKey string `mapstructure:"secret_key"` // 在 COS 控制台获取的 SecretKey
	Region    string `mapstructure:"region"`     // 存储桶所在地域
	Bucket    string `mapstructure:"bucket"`     // 存储桶名称，形如 examplebucket-1250000000

	// BasePath 文件路径前缀，默认为根目录
	BasePath string `mapstructure:"base_path"`
	// BaseOrigin 文件访问的基础域名，默认为 COS 默认域名
	BaseOrigin string `mapstructure:"base_origin"`
	// BucketURL SDK 实际请求的地址，为空时根据 Bucket 和 Region 生成
	// 全球加速域名或者测试的时候才需要设置
	BucketURL string `mapstructure:"bucket_url"`
}

type Provider struct {
	client *cossdk.Client
	layout storage.Layout
	l      logger.Logger
	now    func() time.Time
}

type Option func(p *Provider)

func WithLogger(l logger.Logger) Option {
	return func(p *Provider) {
		p.l = l
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		p.now = now
	}
}

// NewProvider 初始化 COS 客户端
// 只有 bucket 地址构造失败的时候才会返回 error，不会发起网络请求
func NewProvider(c Config, opts ...Option) (*Provider, error) {
	bucketURL, err := buildBucketURL(c)
	if err != nil {
		return nil, err
	}

	client := cossdk.NewClient(&cossdk.BaseURL{BucketURL: bucketURL}, &http.Client{
		Transport: &cossdk.AuthorizationTransport{
			SecretID:  c.SecretID,
			SecretKey: c.SecretKey,
		},
	})
	// SDK 默认会重试，这里只发一次，错误原样交给调用方
	client.Conf.RetryOpt.Count = 1

	if c.BaseOrigin == "" {
		c.BaseOrigin = DefaultBaseOrigin
	}
	p := &Provider{
		client: client,
		layout: storage.NewLayout(c.BasePath, c.BaseOrigin),
		l:      logger.NewNopLogger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	if strings.Contains(c.BaseOrigin, "{Bucket}") || strings.Contains(c.BaseOrigin, "{Region}") {
		p.l.Warn(context.Background(), "COS 访问域名中的占位符不会被替换",
			logger.String("base_origin", c.BaseOrigin))
	}
	return p, nil
}

func buildBucketURL(c Config) (*url.URL, error) {
	if c.BucketURL != "" {
		return url.Parse(c.BucketURL)
	}
	return cossdk.NewBucketURL(c.Bucket, c.Region, true)
}

// 编译期检查接口实现
var _ storage.Provider = (*Provider)(nil)

func (p *Provider) Upload(ctx context.Context, file storage.File) (storage.File, error) {
	key := p.layout.Key(p.now(), file.Name)
	err := p.put(ctx, key, bytes.NewReader(file.Buffer), int64(len(file.Buffer)), file.Mime)
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
		body = http.NoBody
	}
	// 流的长度未知，交给 SDK 处理
	err := p.put(ctx, key, body, 0, file.Mime)
	if err != nil {
		return storage.File{}, err
	}
	file.URL = p.layout.PublicURL(key)
	return file, nil
}

func (p *Provider) put(ctx context.Context, key string, body io.Reader, size int64, mime string) error {
	opt := &cossdk.ObjectPutOptions{
		ObjectPutHeaderOptions: &cossdk.ObjectPutHeaderOptions{
			ContentType:   mime,
			ContentLength: size,
		},
	}
	_, err := p.client.Object.Put(ctx, p.layout.ObjectName(key), body, opt)
	if err != nil {
		p.l.Error(ctx, "COS 上传失败", logger.String("key", key), logger.Error(err))
		return err
	}
	p.l.Debug(ctx, "COS 上传成功", logger.String("key", key))
	return nil
}

func (p *Provider) Delete(ctx context.Context, file storage.File) (storage.File, error) {
	key := p.layout.KeyFromURL(file.URL)
	_, err := p.client.Object.Delete(ctx, key)
	if err != nil {
		p.l.Error(ctx, "COS 删除失败", logger.String("key", key), logger.Error(err))
		return storage.File{}, err
	}
	// 删除后清空 URL
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
