package ioc

import (
	"os"

	"cosstore/pkg/logger"

	"github.com/natefinch/lumberjack"
	"github.com/spf13/viper"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConf 配置信息
type LogConf struct {
	Level      string `mapstructure:"level"`
	Path       string `mapstructure:"path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"` // 最多保留的备份文件数量
}

func InitLogger() logger.Logger {
	lg, err := InitZap(viper.GetString("mode"))
	if err != nil {
		panic(err)
	}
	// otelzap 会把 ctx 里面的 TraceID 带上
	return logger.NewOtelZapLogger(otelzap.New(lg, otelzap.WithMinLevel(zapcore.InfoLevel)))
}

func InitZap(mode string) (*zap.Logger, error) {
	cfg := LogConf{
		Level:      "debug",
		Path:       "logs/app.log",
		MaxSize:    128,
		MaxAge:     7,
		MaxBackups: 3,
	}
	if err := viper.UnmarshalKey("log", &cfg); err != nil {
		return nil, err
	}

	var l = new(zapcore.Level)
	if err := l.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, err
	}

	writeSyncer := getLogWriter(cfg)
	encoder := getEncoder()
	var core zapcore.Core
	if mode == "debug" {
		// 开发模式下，同时输出到标准输出和文件
		consoleEncode := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		core = zapcore.NewTee(
			zapcore.NewCore(consoleEncode, zapcore.Lock(os.Stdout), zapcore.DebugLevel),
			zapcore.NewCore(encoder, writeSyncer, l),
		)
	} else {
		// 生产模式下，只将日志写入文件
		core = zapcore.NewCore(encoder, writeSyncer, l)
	}

	lg := zap.New(core, zap.AddCaller())
	zap.ReplaceGlobals(lg)
	zap.L().Info("init logger success!")
	return lg, nil
}

// getEncoder JSON 格式，ISO8601 时间，大写级别，短调用者
func getEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeDuration = zapcore.SecondsDurationEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	return zapcore.NewJSONEncoder(encoderConfig)
}

// getLogWriter 按大小轮转的日志文件
func getLogWriter(cfg LogConf) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSize, // MB
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge, // 天
		LocalTime:  true,
		Compress:   false,
	})
}
