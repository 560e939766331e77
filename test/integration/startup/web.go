package startup

import (
	"cosstore/internal/web"
	"cosstore/pkg/ginx"
	"cosstore/pkg/logger"
	"cosstore/pkg/storage"
	"cosstore/pkg/storage/local"

	"github.com/gin-gonic/gin"
)

func InitLogger() logger.Logger {
	return logger.NewNopLogger()
}

// InitStorageProvider 集成测试用本地存储，不依赖任何云厂商
func InitStorageProvider(root LocalRoot) storage.Provider {
	p, err := local.NewProvider(local.Config{
		RootPath: string(root),
		BaseURL:  "http://localhost:8080/uploads",
		BasePath: "/",
	})
	if err != nil {
		panic(err)
	}
	return p
}

// LocalRoot 本地存储的根目录
type LocalRoot string

func InitSizeOptions() storage.SizeOptions {
	// 测试里面限制成 1KB，方便构造超限的文件
	return storage.SizeOptions{SizeLimit: 1024}
}

func InitGinServer(l logger.Logger, hdl *web.FileHandler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	ginx.SetLogger(l)
	server := gin.Default()
	hdl.RegisterRoutes(server)
	return server
}
