package storage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultBasePath 默认放在桶的根目录
const DefaultBasePath = "/"

var ErrFileTooLarge = errors.New("文件过大")

// Layout 各个厂商共用的 key / URL 规则
type Layout struct {
	BasePath   string
	BaseOrigin string
}

func NewLayout(basePath, baseOrigin string) Layout {
	if basePath == "" {
		basePath = DefaultBasePath
	}
	return Layout{BasePath: basePath, BaseOrigin: baseOrigin}
}

// Key basePath + 毫秒时间戳 + "-" + 文件名
// 同一毫秒上传同名文件会互相覆盖，这里不做去重
func (l Layout) Key(now time.Time, name string) string {
	return l.BasePath + strconv.FormatInt(now.UnixMilli(), 10) + "-" + name
}

// ObjectName 真正交给 SDK 的对象名，不带开头的 /
func (l Layout) ObjectName(key string) string {
	return strings.TrimLeft(key, "/")
}

// PublicURL baseOrigin 和 key 之间只保留一个 /
func (l Layout) PublicURL(key string) string {
	return strings.TrimRight(l.BaseOrigin, "/") + "/" + strings.TrimLeft(key, "/")
}

// KeyFromURL 取最后一个 / 后面的部分
func (l Layout) KeyFromURL(url string) string {
	return url[strings.LastIndex(url, "/")+1:]
}

func (l Layout) SignedURL(fileURL string) SignedURL {
	return SignedURL{URL: l.BaseOrigin + l.BasePath + fileURL}
}

// CheckFileSize 等于上限是允许的
func CheckFileSize(file File, opts SizeOptions) error {
	if file.Size > opts.SizeLimit {
		return fmt.Errorf("%w: 文件大小不能超过 %sMB", ErrFileTooLarge, formatMB(opts.SizeLimit))
	}
	return nil
}

func formatMB(size int64) string {
	return strconv.FormatFloat(float64(size)/1024/1024, 'f', -1, 64)
}
