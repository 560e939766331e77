package service

import (
	"context"

	"cosstore/pkg/logger"
	"cosstore/pkg/storage"
	"cosstore/pkg/storage/ratelimit"
)

var (
	ErrFileTooLarge  = storage.ErrFileTooLarge
	ErrUploadLimited = ratelimit.ErrLimited
)

//go:generate mockgen -source=./file.go -package=svcmocks -destination=./mocks/file.mock.go FileService
type FileService interface {
	// Upload 先校验大小，再把整个 Buffer 上传
	Upload(ctx context.Context, file storage.File) (storage.File, error)
	// UploadStream 先按声明的 Size 校验，再流式上传
	UploadStream(ctx context.Context, file storage.File) (storage.File, error)
	Delete(ctx context.Context, file storage.File) (storage.File, error)
	SignedURL(ctx context.Context, file storage.File) (storage.SignedURL, error)
	IsPrivate() bool
}

type DefaultFileService struct {
	provider storage.Provider
	sizeOpts storage.SizeOptions
	l        logger.Logger
}

func NewFileService(provider storage.Provider, sizeOpts storage.SizeOptions, l logger.Logger) FileService {
	return &DefaultFileService{
		provider: provider,
		sizeOpts: sizeOpts,
		l:        l,
	}
}

func (svc *DefaultFileService) Upload(ctx context.Context, file storage.File) (storage.File, error) {
	if err := svc.provider.CheckFileSize(file, svc.sizeOpts); err != nil {
		svc.l.Warn(ctx, "文件过大",
			logger.String("name", file.Name),
			logger.Int64("size", file.Size),
			logger.Int64("limit", svc.sizeOpts.SizeLimit))
		return storage.File{}, err
	}
	return svc.provider.Upload(ctx, file)
}

func (svc *DefaultFileService) UploadStream(ctx context.Context, file storage.File) (storage.File, error) {
	if err := svc.provider.CheckFileSize(file, svc.sizeOpts); err != nil {
		svc.l.Warn(ctx, "文件过大",
			logger.String("name", file.Name),
			logger.Int64("size", file.Size),
			logger.Int64("limit", svc.sizeOpts.SizeLimit))
		return storage.File{}, err
	}
	return svc.provider.UploadStream(ctx, file)
}

func (svc *DefaultFileService) Delete(ctx context.Context, file storage.File) (storage.File, error) {
	return svc.provider.Delete(ctx, file)
}

func (svc *DefaultFileService) SignedURL(ctx context.Context, file storage.File) (storage.SignedURL, error) {
	return svc.provider.GetSignedURL(ctx, file)
}

func (svc *DefaultFileService) IsPrivate() bool {
	return svc.provider.IsPrivate()
}
