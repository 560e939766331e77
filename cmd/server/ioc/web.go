package ioc

import (
	"time"

	"cosstore/internal/web"
	"cosstore/pkg/ginx"
	"cosstore/pkg/ginx/middleware"
	"cosstore/pkg/ginx/middleware/ratelimit"
	"cosstore/pkg/limiter"
	"cosstore/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"
)

func InitWebEngine(middlewares []gin.HandlerFunc, l logger.Logger, fileHdl *web.FileHandler) *gin.Engine {
	ginx.SetLogger(l)
	engine := gin.Default()
	// 本地存储的时候直接由自己提供静态文件
	if viper.GetString("storage.type") == "local" {
		engine.Static("/uploads", viper.GetString("storage.local.root_path"))
	}
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.Use(middlewares...)
	fileHdl.RegisterRoutes(engine)
	return engine
}

func InitGinMiddlewares(lim limiter.Limiter, l logger.Logger) []gin.HandlerFunc {
	corsMiddleware := cors.New(cors.Config{
		// 生产环境应该具体指定允许的前端域名
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	})
	pb := middleware.NewPrometheusBuilder("cosstore", "web", "http", "HTTP 接口统计")
	return []gin.HandlerFunc{
		corsMiddleware,
		pb.BuildResponseTime(),
		pb.BuildActiveRequest(),
		ratelimit.NewIPLimiterBuilder(lim, l).Build(),
	}
}
