package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"cosstore/internal/service"
	svcmocks "cosstore/internal/service/mocks"
	"cosstore/internal/web/errs"
	"cosstore/pkg/ginx"
	"cosstore/pkg/logger"
	"cosstore/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fileResult struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data FileVO `json:"data"`
}

func multipartRequest(t *testing.T, path, name, mime string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
	h.Set("Content-Type", mime)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestFileHandler_Upload(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		mock     func(ctrl *gomock.Controller) service.FileService
		wantCode int
		wantURL  string
	}{
		{
			name: "上传成功",
			path: "/file/upload",
			mock: func(ctrl *gomock.Controller) service.FileService {
				svc := svcmocks.NewMockFileService(ctrl)
				svc.EXPECT().Upload(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, f storage.File) (storage.File, error) {
						assert.Equal(t, "a.png", f.Name)
						assert.Equal(t, "image/png", f.Mime)
						assert.Equal(t, int64(3), f.Size)
						assert.Equal(t, []byte("png"), f.Buffer)
						f.URL = "https://cdn.example.com/up/1700000000123-a.png"
						return f, nil
					})
				return svc
			},
			wantCode: http.StatusOK,
			wantURL:  "https://cdn.example.com/up/1700000000123-a.png",
		},
		{
			name: "流式上传成功",
			path: "/file/upload_stream",
			mock: func(ctrl *gomock.Controller) service.FileService {
				svc := svcmocks.NewMockFileService(ctrl)
				svc.EXPECT().UploadStream(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, f storage.File) (storage.File, error) {
						data, err := io.ReadAll(f.Stream)
						require.NoError(t, err)
						assert.Equal(t, "png", string(data))
						return storage.File{Name: f.Name, Mime: f.Mime, Size: f.Size,
							URL: "https://cdn.example.com/up/1700000000123-a.png"}, nil
					})
				return svc
			},
			wantCode: http.StatusOK,
			wantURL:  "https://cdn.example.com/up/1700000000123-a.png",
		},
		{
			name: "文件过大",
			path: "/file/upload",
			mock: func(ctrl *gomock.Controller) service.FileService {
				svc := svcmocks.NewMockFileService(ctrl)
				svc.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(storage.File{}, service.ErrFileTooLarge)
				return svc
			},
			wantCode: errs.FileTooLarge,
		},
		{
			name: "被限流",
			path: "/file/upload_stream",
			mock: func(ctrl *gomock.Controller) service.FileService {
				svc := svcmocks.NewMockFileService(ctrl)
				svc.EXPECT().UploadStream(gomock.Any(), gomock.Any()).Return(storage.File{}, service.ErrUploadLimited)
				return svc
			},
			wantCode: errs.FileUploadTooFrequent,
		},
		{
			name: "存储服务出错",
			path: "/file/upload",
			mock: func(ctrl *gomock.Controller) service.FileService {
				svc := svcmocks.NewMockFileService(ctrl)
				svc.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(storage.File{}, errors.New("access denied"))
				return svc
			},
			wantCode: errs.FileInternalServerError,
		},
	}

	gin.SetMode(gin.TestMode)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			server := gin.New()
			NewFileHandler(logger.NewNopLogger(), tc.mock(ctrl)).RegisterRoutes(server)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, multipartRequest(t, tc.path, "a.png", "image/png", []byte("png")))
			require.Equal(t, http.StatusOK, recorder.Code)

			var res fileResult
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantURL, res.Data.URL)
		})
	}
}

func TestFileHandler_UploadWithoutFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := gin.New()
	NewFileHandler(logger.NewNopLogger(), svcmocks.NewMockFileService(ctrl)).RegisterRoutes(server)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/file/upload", nil))

	var res fileResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	assert.Equal(t, errs.FileInvalidInput, res.Code)
}

func TestFileHandler_Delete(t *testing.T) {
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) service.FileService
		req  DeleteReq

		wantResult ginx.Result
		wantErr    error
	}{
		{
			name: "删除成功",
			mock: func(ctrl *gomock.Controller) service.FileService {
				svc := svcmocks.NewMockFileService(ctrl)
				svc.EXPECT().Delete(gomock.Any(), storage.File{URL: "https://cdn.example.com/up/1-a.png", Name: "a.png"}).
					Return(storage.File{Name: "a.png"}, nil)
				return svc
			},
			req: DeleteReq{URL: "https://cdn.example.com/up/1-a.png", Name: "a.png"},
			wantResult: ginx.Result{
				Code: http.StatusOK,
				Msg:  "删除成功",
				Data: FileVO{Name: "a.png"},
			},
		},
		{
			name: "删除失败",
			mock: func(ctrl *gomock.Controller) service.FileService {
				svc := svcmocks.NewMockFileService(ctrl)
				svc.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(storage.File{}, errors.New("access denied"))
				return svc
			},
			req: DeleteReq{URL: "https://cdn.example.com/up/1-a.png"},
			wantResult: ginx.Result{
				Code: errs.FileInternalServerError,
				Msg:  "系统错误",
			},
			wantErr: errors.New("access denied"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h := NewFileHandler(logger.NewNopLogger(), tc.mock(ctrl))
			ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
			ctx.Request = httptest.NewRequest(http.MethodPost, "/file/delete", nil)

			res, err := h.Delete(ctx, tc.req)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantResult, res)
		})
	}
}

func TestFileHandler_SignedURLAndPrivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := svcmocks.NewMockFileService(ctrl)
	svc.EXPECT().SignedURL(gomock.Any(), storage.File{URL: "1-a.png"}).
		Return(storage.SignedURL{URL: "https://cdn.example.com/up/1-a.png"}, nil)
	svc.EXPECT().IsPrivate().Return(false)

	h := NewFileHandler(logger.NewNopLogger(), svc)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodPost, "/file/signed_url", nil)

	res, err := h.SignedURL(ctx, SignedURLReq{URL: "1-a.png"})
	require.NoError(t, err)
	assert.Equal(t, storage.SignedURL{URL: "https://cdn.example.com/up/1-a.png"}, res.Data)

	res, err = h.IsPrivate(ctx)
	require.NoError(t, err)
	assert.Equal(t, gin.H{"private": false}, res.Data)
}
