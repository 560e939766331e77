package logger

import (
	"context"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var (
	_ Logger = (*ZapLogger)(nil)
	_ Logger = (*OtelZapLogger)(nil)
)

// ZapLogger 直接输出到 zap，忽略 ctx
type ZapLogger struct {
	logger *zap.Logger
}

func NewZapLogger(l *zap.Logger) Logger {
	return &ZapLogger{logger: l}
}

func (l *ZapLogger) Debug(ctx context.Context, msg string, args ...Field) {
	l.logger.Debug(msg, toZapFields(args)...)
}

func (l *ZapLogger) Info(ctx context.Context, msg string, args ...Field) {
	l.logger.Info(msg, toZapFields(args)...)
}

func (l *ZapLogger) Warn(ctx context.Context, msg string, args ...Field) {
	l.logger.Warn(msg, toZapFields(args)...)
}

func (l *ZapLogger) Error(ctx context.Context, msg string, args ...Field) {
	l.logger.Error(msg, toZapFields(args)...)
}

// OtelZapLogger 会从 ctx 里面取出 TraceID / SpanID 一起输出
type OtelZapLogger struct {
	l *otelzap.Logger
}

func NewOtelZapLogger(l *otelzap.Logger) Logger {
	return &OtelZapLogger{l: l}
}

func (o *OtelZapLogger) Debug(ctx context.Context, msg string, args ...Field) {
	o.l.Ctx(ctx).Debug(msg, toZapFields(args)...)
}

func (o *OtelZapLogger) Info(ctx context.Context, msg string, args ...Field) {
	o.l.Ctx(ctx).Info(msg, toZapFields(args)...)
}

func (o *OtelZapLogger) Warn(ctx context.Context, msg string, args ...Field) {
	o.l.Ctx(ctx).Warn(msg, toZapFields(args)...)
}

func (o *OtelZapLogger) Error(ctx context.Context, msg string, args ...Field) {
	o.l.Ctx(ctx).Error(msg, toZapFields(args)...)
}

func toZapFields(args []Field) []zap.Field {
	res := make([]zap.Field, 0, len(args))
	for _, arg := range args {
		// error 单独处理，zap.Any 对 error 只会输出一个空对象
		if err, ok := arg.Val.(error); ok {
			res = append(res, zap.NamedError(arg.Key, err))
			continue
		}
		res = append(res, zap.Any(arg.Key, arg.Val))
	}
	return res
}
