package ioc

import (
	"context"
	"fmt"

	"cosstore/pkg/limiter"
	"cosstore/pkg/logger"
	"cosstore/pkg/storage"
	"cosstore/pkg/storage/awss3"
	"cosstore/pkg/storage/cos"
	"cosstore/pkg/storage/local"
	"cosstore/pkg/storage/opentelemetry"
	"cosstore/pkg/storage/oss"
	storageprom "cosstore/pkg/storage/prometheus"
	"cosstore/pkg/storage/ratelimit"
	"cosstore/pkg/storage/s3"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
)

type StorageConfig struct {
	// Type cos / oss / s3 / aws / local
	Type  string       `mapstructure:"type"`
	COS   cos.Config   `mapstructure:"cos"`
	OSS   oss.Config   `mapstructure:"oss"`
	S3    s3.Config    `mapstructure:"s3"`
	AWS   awss3.Config `mapstructure:"aws"`
	Local local.Config `mapstructure:"local"`
}

func InitStorageProvider(l logger.Logger, lim limiter.Limiter) storage.Provider {
	cfg := StorageConfig{
		Type: "cos",
		Local: local.Config{
			RootPath: "./uploads",
			BaseURL:  "http://localhost:8080/uploads",
		},
	}
	if err := viper.UnmarshalKey("storage", &cfg); err != nil {
		panic(err)
	}

	p, err := newProvider(cfg, l)
	if err != nil {
		panic(err)
	}

	// 由里到外：限流 -> 监控 -> 链路
	var svc storage.Provider = ratelimit.NewDecorator(p, lim)
	promSvc := storageprom.NewDecorator(svc, prometheus.SummaryOpts{
		Namespace: "cosstore",
		Subsystem: "storage",
		Name:      "op_duration_ms",
		Help:      "对象存储操作耗时",
		Objectives: map[float64]float64{
			0.5:  0.01,
			0.9:  0.01,
			0.99: 0.001,
		},
	})
	prometheus.MustRegister(promSvc)
	return opentelemetry.NewDecorator(promSvc, otel.Tracer("cosstore/pkg/storage"))
}

func newProvider(cfg StorageConfig, l logger.Logger) (storage.Provider, error) {
	switch cfg.Type {
	case "cos":
		return cos.NewProvider(cfg.COS, cos.WithLogger(l))
	case "oss":
		return oss.NewProvider(cfg.OSS, l)
	case "s3":
		return s3.NewProvider(cfg.S3, l)
	case "aws":
		return awss3.NewProvider(context.Background(), cfg.AWS, l)
	case "local":
		return local.NewProvider(cfg.Local)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

func InitSizeOptions() storage.SizeOptions {
	limit := viper.GetInt64("storage.size_limit")
	if limit <= 0 {
		// 默认 10MB
		limit = 10 << 20
	}
	return storage.SizeOptions{SizeLimit: limit}
}
