package service

import (
	"context"
	"errors"
	"testing"

	"cosstore/pkg/logger"
	"cosstore/pkg/storage"
	storagemocks "cosstore/pkg/storage/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDefaultFileService_Upload(t *testing.T) {
	sizeOpts := storage.SizeOptions{SizeLimit: 1024}
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) storage.Provider
		file     storage.File
		wantFile storage.File
		wantErr  error
	}{
		{
			name: "上传成功",
			mock: func(ctrl *gomock.Controller) storage.Provider {
				p := storagemocks.NewMockProvider(ctrl)
				file := storage.File{Name: "a.png", Size: 1024, Buffer: []byte("png")}
				p.EXPECT().CheckFileSize(file, sizeOpts).Return(nil)
				p.EXPECT().Upload(gomock.Any(), file).
					Return(storage.File{Name: "a.png", Size: 1024, URL: "https://cdn.example.com/1-a.png"}, nil)
				return p
			},
			file:     storage.File{Name: "a.png", Size: 1024, Buffer: []byte("png")},
			wantFile: storage.File{Name: "a.png", Size: 1024, URL: "https://cdn.example.com/1-a.png"},
		},
		{
			name: "文件过大",
			mock: func(ctrl *gomock.Controller) storage.Provider {
				p := storagemocks.NewMockProvider(ctrl)
				p.EXPECT().CheckFileSize(gomock.Any(), sizeOpts).Return(storage.ErrFileTooLarge)
				return p
			},
			file:    storage.File{Name: "a.png", Size: 1025},
			wantErr: ErrFileTooLarge,
		},
		{
			name: "存储服务出错",
			mock: func(ctrl *gomock.Controller) storage.Provider {
				p := storagemocks.NewMockProvider(ctrl)
				p.EXPECT().CheckFileSize(gomock.Any(), sizeOpts).Return(nil)
				p.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(storage.File{}, errors.New("access denied"))
				return p
			},
			file:    storage.File{Name: "a.png", Size: 1},
			wantErr: errors.New("access denied"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewFileService(tc.mock(ctrl), sizeOpts, logger.NewNopLogger())
			file, err := svc.Upload(context.Background(), tc.file)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantFile, file)
		})
	}
}

func TestDefaultFileService_UploadStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sizeOpts := storage.SizeOptions{SizeLimit: 10}
	p := storagemocks.NewMockProvider(ctrl)
	p.EXPECT().CheckFileSize(gomock.Any(), sizeOpts).Return(storage.ErrFileTooLarge)

	svc := NewFileService(p, sizeOpts, logger.NewNopLogger())
	_, err := svc.UploadStream(context.Background(), storage.File{Name: "a.png", Size: 11})
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestDefaultFileService_PassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := storagemocks.NewMockProvider(ctrl)
	p.EXPECT().Delete(gomock.Any(), storage.File{URL: "https://cdn.example.com/1-a.png"}).Return(storage.File{}, nil)
	p.EXPECT().GetSignedURL(gomock.Any(), storage.File{URL: "1-a.png"}).
		Return(storage.SignedURL{URL: "https://cdn.example.com/1-a.png"}, nil)
	p.EXPECT().IsPrivate().Return(false)

	svc := NewFileService(p, storage.SizeOptions{}, logger.NewNopLogger())

	file, err := svc.Delete(context.Background(), storage.File{URL: "https://cdn.example.com/1-a.png"})
	assert.NoError(t, err)
	assert.Equal(t, "", file.URL)

	signed, err := svc.SignedURL(context.Background(), storage.File{URL: "1-a.png"})
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/1-a.png", signed.URL)

	assert.False(t, svc.IsPrivate())
}
