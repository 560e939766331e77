package web

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"cosstore/internal/service"
	"cosstore/internal/web/errs"
	"cosstore/pkg/ginx"
	"cosstore/pkg/logger"
	"cosstore/pkg/storage"

	"github.com/gin-gonic/gin"
)

var _ Handler = (*FileHandler)(nil)

type FileHandler struct {
	log     logger.Logger
	fileSvc service.FileService
}

func NewFileHandler(log logger.Logger, fileSvc service.FileService) *FileHandler {
	return &FileHandler{
		log:     log,
		fileSvc: fileSvc,
	}
}

func (h *FileHandler) RegisterRoutes(e *gin.Engine) {
	g := e.Group("/file")
	g.POST("/upload", ginx.Wrap(h.Upload))
	g.POST("/upload_stream", ginx.Wrap(h.UploadStream))
	g.POST("/delete", ginx.WrapBody(h.Delete))
	g.POST("/signed_url", ginx.WrapBody(h.SignedURL))
	g.GET("/private", ginx.Wrap(h.IsPrivate))
}

type FileVO struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Mime string `json:"mime"`
	Size int64  `json:"size"`
}

func toVO(f storage.File) FileVO {
	return FileVO{URL: f.URL, Name: f.Name, Mime: f.Mime, Size: f.Size}
}

func (h *FileHandler) Upload(ctx *gin.Context) (ginx.Result, error) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return ginx.Result{Code: errs.FileInvalidInput, Msg: "请选择要上传的文件"}, err
	}
	src, err := fh.Open()
	if err != nil {
		return ginx.Result{Code: errs.FileInternalServerError, Msg: "系统错误"}, err
	}
	defer src.Close()

	buf, err := io.ReadAll(src)
	if err != nil {
		return ginx.Result{Code: errs.FileInternalServerError, Msg: "系统错误"}, err
	}
	file := fileOf(fh)
	file.Buffer = buf

	res, err := h.fileSvc.Upload(ctx.Request.Context(), file)
	if err != nil {
		return uploadErrResult(err), err
	}
	return ginx.Result{Code: http.StatusOK, Msg: "上传成功", Data: toVO(res)}, nil
}

func (h *FileHandler) UploadStream(ctx *gin.Context) (ginx.Result, error) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return ginx.Result{Code: errs.FileInvalidInput, Msg: "请选择要上传的文件"}, err
	}
	src, err := fh.Open()
	if err != nil {
		return ginx.Result{Code: errs.FileInternalServerError, Msg: "系统错误"}, err
	}
	defer src.Close()

	file := fileOf(fh)
	file.Stream = src

	res, err := h.fileSvc.UploadStream(ctx.Request.Context(), file)
	if err != nil {
		return uploadErrResult(err), err
	}
	return ginx.Result{Code: http.StatusOK, Msg: "上传成功", Data: toVO(res)}, nil
}

func fileOf(fh *multipart.FileHeader) storage.File {
	return storage.File{
		Name: fh.Filename,
		Mime: fh.Header.Get("Content-Type"),
		Size: fh.Size,
	}
}

func uploadErrResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrFileTooLarge):
		return ginx.Result{Code: errs.FileTooLarge, Msg: err.Error()}
	case errors.Is(err, service.ErrUploadLimited):
		return ginx.Result{Code: errs.FileUploadTooFrequent, Msg: "上传太频繁，请稍后再试"}
	default:
		return ginx.Result{Code: errs.FileInternalServerError, Msg: "系统错误"}
	}
}

type DeleteReq struct {
	URL  string `json:"url" binding:"required"`
	Name string `json:"name"`
}

func (h *FileHandler) Delete(ctx *gin.Context, req DeleteReq) (ginx.Result, error) {
	res, err := h.fileSvc.Delete(ctx.Request.Context(), storage.File{URL: req.URL, Name: req.Name})
	if err != nil {
		return ginx.Result{Code: errs.FileInternalServerError, Msg: "系统错误"}, err
	}
	return ginx.Result{Code: http.StatusOK, Msg: "删除成功", Data: toVO(res)}, nil
}

type SignedURLReq struct {
	URL string `json:"url" binding:"required"`
}

func (h *FileHandler) SignedURL(ctx *gin.Context, req SignedURLReq) (ginx.Result, error) {
	res, err := h.fileSvc.SignedURL(ctx.Request.Context(), storage.File{URL: req.URL})
	if err != nil {
		return ginx.Result{Code: errs.FileInternalServerError, Msg: "系统错误"}, err
	}
	return ginx.Result{Code: http.StatusOK, Msg: "OK", Data: res}, nil
}

func (h *FileHandler) IsPrivate(ctx *gin.Context) (ginx.Result, error) {
	return ginx.Result{
		Code: http.StatusOK,
		Msg:  "OK",
		Data: gin.H{"private": h.fileSvc.IsPrivate()},
	}, nil
}
