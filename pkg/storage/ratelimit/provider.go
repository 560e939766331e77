package ratelimit

import (
	"context"
	"errors"

	"cosstore/pkg/limiter"
	"cosstore/pkg/storage"
)

var ErrLimited = errors.New("触发限流")

var _ storage.Provider = (*Provider)(nil)

// Provider 只限制上传，删除和只读操作直接放行
type Provider struct {
	// 被装饰的
	svc     storage.Provider
	limiter limiter.Limiter
	key     string
}

func NewDecorator(svc storage.Provider, l limiter.Limiter) storage.Provider {
	return &Provider{
		svc:     svc,
		limiter: l,
		key:     "storage-upload",
	}
}

func (p *Provider) check(ctx context.Context) error {
	limited, err := p.limiter.Limit(ctx, p.key)
	if err != nil {
		return err
	}
	if limited {
		return ErrLimited
	}
	return nil
}

func (p *Provider) Upload(ctx context.Context, file storage.File) (storage.File, error) {
	if err := p.check(ctx); err != nil {
		return storage.File{}, err
	}
	return p.svc.Upload(ctx, file)
}

func (p *Provider) UploadStream(ctx context.Context, file storage.File) (storage.File, error) {
	if err := p.check(ctx); err != nil {
		return storage.File{}, err
	}
	return p.svc.UploadStream(ctx, file)
}

func (p *Provider) Delete(ctx context.Context, file storage.File) (storage.File, error) {
	return p.svc.Delete(ctx, file)
}

func (p *Provider) CheckFileSize(file storage.File, opts storage.SizeOptions) error {
	return p.svc.CheckFileSize(file, opts)
}

func (p *Provider) GetSignedURL(ctx context.Context, file storage.File) (storage.SignedURL, error) {
	return p.svc.GetSignedURL(ctx, file)
}

func (p *Provider) IsPrivate() bool {
	return p.svc.IsPrivate()
}
