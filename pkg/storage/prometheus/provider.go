package prometheus

import (
	"context"
	"time"

	"cosstore/pkg/storage"

	"github.com/prometheus/client_golang/prometheus"
)

// Provider 统计每个远程操作的耗时，单位毫秒
// 本身也是一个 prometheus.Collector，由调用方决定注册到哪里
type Provider struct {
	svc    storage.Provider
	vector *prometheus.SummaryVec
}

func NewDecorator(svc storage.Provider, opt prometheus.SummaryOpts) *Provider {
	return &Provider{
		svc:    svc,
		vector: prometheus.NewSummaryVec(opt, []string{"op", "status"}),
	}
}

var (
	_ storage.Provider     = (*Provider)(nil)
	_ prometheus.Collector = (*Provider)(nil)
)

func (p *Provider) Describe(ch chan<- *prometheus.Desc) {
	p.vector.Describe(ch)
}

func (p *Provider) Collect(ch chan<- prometheus.Metric) {
	p.vector.Collect(ch)
}

func (p *Provider) observe(op string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	p.vector.WithLabelValues(op, status).Observe(float64(time.Since(start).Milliseconds()))
}

func (p *Provider) Upload(ctx context.Context, file storage.File) (res storage.File, err error) {
	defer func(start time.Time) { p.observe("upload", start, err) }(time.Now())
	return p.svc.Upload(ctx, file)
}

func (p *Provider) UploadStream(ctx context.Context, file storage.File) (res storage.File, err error) {
	defer func(start time.Time) { p.observe("upload_stream", start, err) }(time.Now())
	return p.svc.UploadStream(ctx, file)
}

func (p *Provider) Delete(ctx context.Context, file storage.File) (res storage.File, err error) {
	defer func(start time.Time) { p.observe("delete", start, err) }(time.Now())
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
