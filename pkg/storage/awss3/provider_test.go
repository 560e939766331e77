package awss3

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cosstore/pkg/logger"
	"cosstore/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	method      string
	path        string
	contentType string
	body        string
}

func newTestProvider(t *testing.T, status int, c *captured) (*Provider, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*c = captured{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get("Content-Type"),
			body:        string(body),
		}
		w.WriteHeader(status)
		if status >= 300 {
			_, _ = w.Write([]byte(`<?xml version="1.0"?><Error><Code>AccessDenied</Code><Message>Access Denied</Message></Error>`))
		}
	}))

	p, err := NewProvider(context.Background(), Config{
		Endpoint:        server.URL,
		Region:          "us-east-1",
		AccessKeyID:     "test-key",
		SecretAccessKey: "test-secret",
		BucketName:      "bucket-b",
		UsePathStyle:    true,
		BasePath:        "/up/",
		BaseOrigin:      "https://cdn.example.com",
	}, logger.NewNopLogger())
	require.NoError(t, err)
	p.now = func() time.Time { return time.UnixMilli(1700000000123) }
	return p, server
}

func TestProvider_Upload(t *testing.T) {
	testCases := []struct {
		name    string
		upload  func(p *Provider) (storage.File, error)
		status  int
		wantErr bool
		wantURL string
	}{
		{
			name: "普通上传",
			upload: func(p *Provider) (storage.File, error) {
				return p.Upload(context.Background(), storage.File{Name: "a.png", Mime: "image/png", Buffer: []byte("png")})
			},
			status:  http.StatusOK,
			wantURL: "https://cdn.example.com/up/1700000000123-a.png",
		},
		{
			name: "流式上传",
			upload: func(p *Provider) (storage.File, error) {
				return p.UploadStream(context.Background(), storage.File{Name: "a.png", Mime: "image/png", Stream: strings.NewReader("png"), Size: 3})
			},
			status:  http.StatusOK,
			wantURL: "https://cdn.example.com/up/1700000000123-a.png",
		},
		{
			name: "没有权限",
			upload: func(p *Provider) (storage.File, error) {
				return p.Upload(context.Background(), storage.File{Name: "a.png", Mime: "image/png", Buffer: []byte("png")})
			},
			status:  http.StatusForbidden,
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var c captured
			p, server := newTestProvider(t, tc.status, &c)
			defer server.Close()

			file, err := tc.upload(p)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Equal(t, "", file.URL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantURL, file.URL)
			assert.Equal(t, http.MethodPut, c.method)
			assert.Equal(t, "/bucket-b/up/1700000000123-a.png", c.path)
			assert.Equal(t, "image/png", c.contentType)
			assert.Contains(t, c.body, "png")
		})
	}
}

func TestProvider_Delete(t *testing.T) {
	var c captured
	p, server := newTestProvider(t, http.StatusNoContent, &c)
	defer server.Close()

	file, err := p.Delete(context.Background(), storage.File{URL: "https://cdn.example.com/up/1700000000123-a.png", Name: "a.png"})
	require.NoError(t, err)
	assert.Equal(t, "", file.URL)
	assert.Equal(t, "a.png", file.Name)
	assert.Equal(t, http.MethodDelete, c.method)
	assert.Equal(t, "/bucket-b/1700000000123-a.png", c.path)
}

func TestDefaultOrigin(t *testing.T) {
	testCases := []struct {
		name string
		c    Config
		want string
	}{
		{name: "AWS 默认", c: Config{BucketName: "b", Region: "us-west-2"}, want: "https://b.s3.us-west-2.amazonaws.com"},
		{name: "path style", c: Config{Endpoint: "http://localhost:9000/", BucketName: "b", UsePathStyle: true}, want: "http://localhost:9000/b"},
		{name: "virtual host", c: Config{Endpoint: "https://s3.example.com", BucketName: "b"}, want: "https://b.s3.example.com"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, defaultOrigin(tc.c))
		})
	}
}
