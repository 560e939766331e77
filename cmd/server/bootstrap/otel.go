package bootstrap

import (
	"context"
	"time"

	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

// InitOTEL 返回一个关闭函数，并且让调用者关闭的时候来决定这个 ctx
func InitOTEL() func(ctx context.Context) {
	type Config struct {
		ServiceName    string `mapstructure:"service_name"`
		ServiceVersion string `mapstructure:"service_version"`
		ZipkinEndpoint string `mapstructure:"zipkin_endpoint"`
	}
	cfg := Config{
		ServiceName:    "cosstore",
		ServiceVersion: "v0.0.1",
		ZipkinEndpoint: "http://localhost:9411/api/v2/spans",
	}
	if err := viper.UnmarshalKey("otel", &cfg); err != nil {
		panic(err)
	}

	res, err := newResource(cfg.ServiceName, cfg.ServiceVersion)
	if err != nil {
		panic(err)
	}
	// 在客户端和服务端之间传递 tracing 的相关信息
	otel.SetTextMapPropagator(newPropagator())

	tp, err := newTraceProvider(res, cfg.ZipkinEndpoint)
	if err != nil {
		panic(err)
	}
	otel.SetTracerProvider(tp)

	return func(ctx context.Context) {
		_ = tp.Shutdown(ctx)
	}
}

// 产生遥测数据的实体
func newResource(serviceName, serviceVersion string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		))
}

func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}

func newTraceProvider(res *resource.Resource, endpoint string) (*trace.TracerProvider, error) {
	// 将 OTel 内存中的 Span 数据转换成 Zipkin 的格式
	exporter, err := zipkin.New(endpoint)
	if err != nil {
		return nil, err
	}
	return trace.NewTracerProvider(
		trace.WithBatcher(exporter, trace.WithBatchTimeout(time.Second)),
		trace.WithResource(res),
	), nil
}
