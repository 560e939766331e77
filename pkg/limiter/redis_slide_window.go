package limiter

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

//go:embed lua/slide_window.lua
var luaSlideWindow string

// 全局唯一，Run 会优先走 EVALSHA
var slideWindowScript = redis.NewScript(luaSlideWindow)

// RedisSlideWindowLimiter 基于 Redis 有序集合的滑动窗口限流
// interval 内允许 rate 个请求
type RedisSlideWindowLimiter struct {
	cmd      redis.Cmdable
	prefix   string
	interval time.Duration
	rate     int

	now func() time.Time
	// member 有序集合里面的成员，必须每次都不一样
	member func() string
}

func NewRedisSlideWindowLimiter(cmd redis.Cmdable, prefix string, interval time.Duration, rate int) Limiter {
	return &RedisSlideWindowLimiter{
		cmd:      cmd,
		prefix:   prefix,
		interval: interval,
		rate:     rate,
		now:      time.Now,
		member:   uuid.NewString,
	}
}

func (r *RedisSlideWindowLimiter) Limit(ctx context.Context, key string) (bool, error) {
	res, err := slideWindowScript.Run(ctx, r.cmd, []string{r.prefix + ":" + key},
		r.interval.Milliseconds(), r.rate, r.now().UnixMilli(), r.member()).Result()
	if err != nil {
		return false, err
	}
	// 脚本返回 1 表示被限流，0 表示通过
	limited, ok := res.(int64)
	if !ok {
		return false, fmt.Errorf("unexpected result type from redis script: %T", res)
	}
	return limited == 1, nil
}
