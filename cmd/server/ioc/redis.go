package ioc

import (
	"time"

	"cosstore/pkg/limiter"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

func InitRedis() redis.Cmdable {
	return redis.NewClient(&redis.Options{
		Addr: viper.GetString("redis.addr"),
	})
}

func InitLimiter(cmd redis.Cmdable) limiter.Limiter {
	type Config struct {
		Interval time.Duration `mapstructure:"interval"`
		Rate     int           `mapstructure:"rate"`
	}
	// 默认一秒一百个
	cfg := Config{
		Interval: time.Second,
		Rate:     100,
	}
	if err := viper.UnmarshalKey("ratelimit", &cfg); err != nil {
		panic(err)
	}
	return limiter.NewRedisSlideWindowLimiter(cmd, "cosstore", cfg.Interval, cfg.Rate)
}
