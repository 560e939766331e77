package storage

import (
	"context"
	"io"
)

// File 调用方持有的文件描述
// Provider 只在调用期间读取 Buffer / Stream，从不修改调用方传入的 File，
// 所有操作都返回一个新的 File
type File struct {
	// URL 上传成功后的公开访问地址，删除后被清空
	URL string `json:"url"`
	// Stream 流式上传时的数据来源
	Stream io.Reader `json:"-"`
	// Buffer 普通上传时的数据来源
	Buffer []byte `json:"-"`
	// Name 用来生成存储路径
	Name string `json:"name"`
	// Mime 作为 Content-Type 透传给存储服务
	Mime string `json:"mime"`
	// Size 文件大小，单位字节
	Size int64 `json:"size"`
}

type SizeOptions struct {
	// SizeLimit 单位字节
	SizeLimit int64
}

type SignedURL struct {
	URL string `json:"url"`
}

// Provider 定义存储行为的标准接口
// 设计原则：依赖抽象，不依赖具体实现
//
//go:generate mockgen -source=./type.go -package=storagemocks -destination=./mocks/provider.mock.go Provider
type Provider interface {
	// Upload 把 file.Buffer 上传上去，返回带 URL 的 File
	Upload(ctx context.Context, file File) (File, error)
	// UploadStream 和 Upload 一样，只是数据从 file.Stream 读
	UploadStream(ctx context.Context, file File) (File, error)
	// Delete 根据 file.URL 删除对象，返回 URL 被清空的 File
	Delete(ctx context.Context, file File) (File, error)
	// CheckFileSize file.Size 超过 SizeLimit 时返回 ErrFileTooLarge
	CheckFileSize(file File, opts SizeOptions) error
	// GetSignedURL 并不会真的签名，只是拼接一个访问地址
	GetSignedURL(ctx context.Context, file File) (SignedURL, error)
	// IsPrivate 是否是私有读
	IsPrivate() bool
}
