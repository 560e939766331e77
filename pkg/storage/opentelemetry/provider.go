package opentelemetry

import (
	"context"

	"cosstore/pkg/storage"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Provider struct {
	svc    storage.Provider
	tracer trace.Tracer
}

func NewDecorator(svc storage.Provider, tracer trace.Tracer) storage.Provider {
	return &Provider{
		svc:    svc,
		tracer: tracer,
	}
}

var _ storage.Provider = (*Provider)(nil)

func (p *Provider) start(ctx context.Context, op string, file storage.File) (context.Context, trace.Span) {
	ctx, span := p.tracer.Start(ctx, "storage."+op)
	span.SetAttributes(
		attribute.String("file.name", file.Name),
		attribute.Int64("file.size", file.Size),
	)
	return ctx, span
}

func end(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (p *Provider) Upload(ctx context.Context, file storage.File) (storage.File, error) {
	ctx, span := p.start(ctx, "upload", file)
	res, err := p.svc.Upload(ctx, file)
	span.SetAttributes(attribute.String("file.url", res.URL))
	end(span, err)
	return res, err
}

func (p *Provider) UploadStream(ctx context.Context, file storage.File) (storage.File, error) {
	ctx, span := p.start(ctx, "upload_stream", file)
	res, err := p.svc.UploadStream(ctx, file)
	span.SetAttributes(attribute.String("file.url", res.URL))
	end(span, err)
	return res, err
}

func (p *Provider) Delete(ctx context.Context, file storage.File) (storage.File, error) {
	ctx, span := p.start(ctx, "delete", file)
	span.SetAttributes(attribute.String("file.url", file.URL))
	res, err := p.svc.Delete(ctx, file)
	end(span, err)
	return res, err
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
