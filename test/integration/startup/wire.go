//go:build wireinject

package startup

import (
	"cosstore/internal/service"
	"cosstore/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
)

var thirdParty = wire.NewSet(
	InitLogger,
	InitStorageProvider,
	InitSizeOptions,
)

func InitWebServer(root LocalRoot) *gin.Engine {
	wire.Build(
		thirdParty,
		service.NewFileService,
		web.NewFileHandler,
		InitGinServer,
	)
	return new(gin.Engine)
}
