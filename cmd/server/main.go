package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cosstore/cmd/server/bootstrap"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	bootstrap.InitViper()
	bootstrap.InitValidate()
	tpCancel := bootstrap.InitOTEL()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		tpCancel(ctx)
	}()

	app := InitApp()

	addr := viper.GetString("addr")
	if addr == "" {
		addr = ":8080"
	}
	srv := &http.Server{
		Addr:    addr,
		Handler: app.engine,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			// 只有非关闭引起的错误才 panic
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	// kill -9 是 SIGKILL，捕获不到
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	// 上传可能比较慢，多给一点时间收尾
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("Server forced to shutdown", zap.Error(err))
	}
	_ = zap.L().Sync()
	zap.L().Info("Server exiting")
}
