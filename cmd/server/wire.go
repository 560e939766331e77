//go:build wireinject

package main

import (
	"cosstore/cmd/server/ioc"
	"cosstore/internal/service"
	"cosstore/internal/web"

	"github.com/google/wire"
)

var thirdParty = wire.NewSet(
	ioc.InitLogger,
	ioc.InitRedis,
	ioc.InitLimiter,
)

var fileSvc = wire.NewSet(
	ioc.InitStorageProvider,
	ioc.InitSizeOptions,
	service.NewFileService,
)

func InitApp() *App {
	wire.Build(
		thirdParty,
		fileSvc,

		web.NewFileHandler,

		ioc.InitWebEngine,
		ioc.InitGinMiddlewares,
		wire.Struct(new(App), "*"),
	)
	return new(App)
}
