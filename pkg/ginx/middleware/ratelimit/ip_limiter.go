package ratelimit

import (
	"net/http"

	"cosstore/pkg/limiter"
	"cosstore/pkg/logger"

	"github.com/gin-gonic/gin"
)

// IPLimiterBuilder 按客户端 IP 限流
type IPLimiterBuilder struct {
	prefix  string
	limiter limiter.Limiter
	l       logger.Logger
}

func NewIPLimiterBuilder(l limiter.Limiter, log logger.Logger) *IPLimiterBuilder {
	return &IPLimiterBuilder{
		prefix:  "ip-limiter",
		limiter: l,
		l:       log,
	}
}

func (b *IPLimiterBuilder) Prefix(prefix string) *IPLimiterBuilder {
	b.prefix = prefix
	return b
}

func (b *IPLimiterBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		limited, err := b.limiter.Limit(ctx.Request.Context(), b.prefix+":"+ctx.ClientIP())
		if err != nil {
			// 限流器出错的时候保守一点，直接拒绝
			b.l.Error(ctx.Request.Context(), "ip限流失败", logger.Error(err))
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if limited {
			b.l.Warn(ctx.Request.Context(), "ip限流", logger.String("ip", ctx.ClientIP()))
			ctx.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		ctx.Next()
	}
}
