package ginx

import (
	"errors"
	"net/http"

	"cosstore/pkg/logger"
	"cosstore/pkg/validate"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var log = logger.NewNopLogger()

func SetLogger(l logger.Logger) {
	log = l
}

func Wrap(bizFn func(ctx *gin.Context) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := bizFn(ctx)
		if err != nil {
			log.Error(ctx.Request.Context(), "执行业务逻辑失败", logger.Error(err))
		}
		log.Debug(ctx.Request.Context(), "返回响应", logger.Field{Key: "res", Val: res})

		ctx.JSON(http.StatusOK, res)
	}
}

// WrapBody bizFn 就是你的业务逻辑
// 请求体绑定和校验失败的时候直接返回，不会进入 bizFn
func WrapBody[Req any](bizFn func(ctx *gin.Context, req Req) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req Req
		if err := ctx.ShouldBind(&req); err != nil {
			log.Error(ctx.Request.Context(), "输入错误", logger.Error(err))
			ctx.JSON(http.StatusOK, bindErrResult(err))
			return
		}
		log.Debug(ctx.Request.Context(), "输入参数", logger.Field{Key: "req", Val: req})

		res, err := bizFn(ctx, req)
		if err != nil {
			log.Error(ctx.Request.Context(), "执行业务逻辑失败", logger.Error(err))
		}
		log.Debug(ctx.Request.Context(), "返回响应", logger.Field{Key: "res", Val: res})

		ctx.JSON(http.StatusOK, res)
	}
}

func bindErrResult(err error) Result {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) && validate.Trans != nil {
		return Result{
			Code: http.StatusBadRequest,
			Msg:  "输入参数有误，请检查",
			Data: validate.RemoveTopStruct(verr.Translate(validate.Trans)),
		}
	}
	return Result{
		Code: http.StatusBadRequest,
		Msg:  "请求体格式错误",
	}
}
