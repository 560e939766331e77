package oss

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cosstore/pkg/logger"
	"cosstore/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_UploadAndDelete(t *testing.T) {
	var method, path, contentType, body string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		method, path, contentType, body = r.Method, r.URL.Path, r.Header.Get("Content-Type"), string(data)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p, err := NewProvider(Config{
		Endpoint:        server.URL,
		AccessKeyID:     "id",
		AccessKeySecret: "secret",
		BucketName:      "bucket-b",
		BasePath:        "/up/",
		BaseOrigin:      "https://cdn.example.com",
		UseCname:        true,
	}, logger.NewNopLogger())
	require.NoError(t, err)
	p.now = func() time.Time { return time.UnixMilli(1700000000123) }

	file, err := p.Upload(context.Background(), storage.File{Name: "a.png", Mime: "image/png", Buffer: []byte("png")})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/up/1700000000123-a.png", file.URL)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/up/1700000000123-a.png", path)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, "png", body)

	file, err = p.Delete(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, "", file.URL)
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/1700000000123-a.png", path)
}

func TestDefaultOrigin(t *testing.T) {
	assert.Equal(t, "https://b.oss-cn-hangzhou.aliyuncs.com",
		defaultOrigin(Config{Endpoint: "https://oss-cn-hangzhou.aliyuncs.com", BucketName: "b"}))
	assert.Equal(t, "https://b.oss-cn-hangzhou.aliyuncs.com",
		defaultOrigin(Config{Endpoint: "oss-cn-hangzhou.aliyuncs.com", BucketName: "b"}))
	assert.Equal(t, "https://static.example.com",
		defaultOrigin(Config{Endpoint: "https://static.example.com", BucketName: "b", UseCname: true}))
}
