package awss3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"cosstore/pkg/logger"
	"cosstore/pkg/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config AWS S3 官方 SDK 的配置，Endpoint 为空的时候走 AWS 默认域名
type Config struct {
	Endpoint        string `mapstructure:"endpoint"` // 例如 https://s3.ceph-provider.com
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket"`
	// CEPH / MinIO 需要打开
	UsePathStyle bool `mapstructure:"use_path_style"`

	BasePath   string `mapstructure:"base_path"`
	BaseOrigin string `mapstructure:"base_origin"`
}

type Provider struct {
	client *s3.Client
	bucket string
	layout storage.Layout
	l      logger.Logger
	now    func() time.Time
}

func NewProvider(ctx context.Context, c Config, l logger.Logger) (*Provider, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(c.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, ""),
		),
		// 不重试，失败直接交给调用方
		awsconfig.WithRetryMaxAttempts(1),
	)
	if err != nil {
		return nil, fmt.Errorf("aws load config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
		o.UsePathStyle = c.UsePathStyle
	})

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

func defaultOrigin(c Config) string {
	if c.Endpoint == "" {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", c.BucketName, c.Region)
	}
	endpoint := strings.TrimRight(c.Endpoint, "/")
	if c.UsePathStyle {
		return endpoint + "/" + c.BucketName
	}
	scheme, host, ok := strings.Cut(endpoint, "://")
	if !ok {
		return "https://" + c.BucketName + "." + endpoint
	}
	return scheme + "://" + c.BucketName + "." + host
}

var _ storage.Provider = (*Provider)(nil)

func (p *Provider) Upload(ctx context.Context, file storage.File) (storage.File, error) {
	key := p.layout.Key(p.now(), file.Name)
	if err := p.put(ctx, key, bytes.NewReader(file.Buffer), int64(len(file.Buffer)), file.Mime); err != nil {
		return storage.File{}, err
	}
	file.URL = p.layout.PublicURL(key)
	return file, nil
}

// UploadStream 非 TLS 的时候 SDK 要求 body 可以 Seek，
// gin 的 multipart.File 满足这个条件
func (p *Provider) UploadStream(ctx context.Context, file storage.File) (storage.File, error) {
	key := p.layout.Key(p.now(), file.Name)
	body := file.Stream
	if body == nil {
		body = bytes.NewReader(nil)
	}
	if err := p.put(ctx, key, body, file.Size, file.Mime); err != nil {
		return storage.File{}, err
	}
	file.URL = p.layout.PublicURL(key)
	return file, nil
}

func (p *Provider) put(ctx context.Context, key string, body io.Reader, size int64, mime string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(p.layout.ObjectName(key)),
		Body:   body,
	}
	if mime != "" {
		input.ContentType = aws.String(mime)
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}
	if _, err := p.client.PutObject(ctx, input); err != nil {
		p.l.Error(ctx, "AWS S3 上传失败", logger.String("key", key), logger.Error(err))
		return err
	}
	return nil
}

func (p *Provider) Delete(ctx context.Context, file storage.File) (storage.File, error) {
	key := p.layout.KeyFromURL(file.URL)
	_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		p.l.Error(ctx, "AWS S3 删除失败", logger.String("key", key), logger.Error(err))
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
