package usecase_test

import (
	"context"
	"encoding/base64"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/internal/ports/mocks"
	"github.com/Gunvolt24/seafood-shop/internal/usecase"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestUpload_ProductPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockImageStorage(ctrl)

	data := []byte("\x89PNG fake")
	storage.EXPECT().Save(gomock.Any(), gomock.Any(), data, "image/png").
		DoAndReturn(func(_ context.Context, p string, _ []byte, _ string) (*domain.StoredImage, error) {
			require.Regexp(t, regexp.MustCompile(`^products/SKU-1-\d+-[0-9a-f]{6}\.png$`), p)
			return &domain.StoredImage{Bucket: "product-images", StoragePath: p, PublicURL: "/uploads/product-images/" + p}, nil
		})

	svc := usecase.NewUploadService(storage, 0, noopLogger{})
	got, err := svc.Upload(context.Background(), "admin@shop.ru", domain.UploadRequest{
		FileName:   "Photo.PNG",
		FileData:   base64.StdEncoding.EncodeToString(data),
		MimeType:   "image/png",
		ProductSKU: "SKU-1/../",
	})
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), got.FileSize)
	require.Equal(t, "admin@shop.ru", got.UploadedBy)
	require.Equal(t, "Photo.PNG", got.FileName)
}

func TestUpload_GenericPathAndDataURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockImageStorage(ctrl)

	storage.EXPECT().Save(gomock.Any(), gomock.Any(), []byte("<svg/>"), "image/svg+xml").
		DoAndReturn(func(_ context.Context, p string, _ []byte, _ string) (*domain.StoredImage, error) {
			require.True(t, strings.HasPrefix(p, "uploads/"), p)
			require.True(t, strings.HasSuffix(p, ".svg"), p)
			return &domain.StoredImage{StoragePath: p}, nil
		})

	svc := usecase.NewUploadService(storage, 0, noopLogger{})
	_, err := svc.Upload(context.Background(), "a", domain.UploadRequest{
		FileName: "logo.svg",
		FileData: "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte("<svg/>")),
		MimeType: "image/svg+xml",
	})
	require.NoError(t, err)
}

func TestUpload_Rejections(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockImageStorage(ctrl)
	storage.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewUploadService(storage, 8, noopLogger{})
	ctx := context.Background()
	ok := base64.StdEncoding.EncodeToString([]byte("tiny"))

	_, err := svc.Upload(ctx, "a", domain.UploadRequest{FileName: "a.png", MimeType: "image/png"})
	require.ErrorIs(t, err, usecase.ErrUploadMissingFields)

	_, err = svc.Upload(ctx, "a", domain.UploadRequest{FileName: "a.gif", FileData: ok, MimeType: "image/gif"})
	require.ErrorIs(t, err, usecase.ErrUploadUnsupported)

	_, err = svc.Upload(ctx, "a", domain.UploadRequest{FileName: "noext", FileData: ok, MimeType: "image/png"})
	require.ErrorIs(t, err, usecase.ErrUploadUnsupported)

	big := base64.StdEncoding.EncodeToString([]byte("0123456789"))
	_, err = svc.Upload(ctx, "a", domain.UploadRequest{FileName: "a.jpg", FileData: big, MimeType: "image/jpeg"})
	require.ErrorIs(t, err, usecase.ErrUploadTooLarge)

	_, err = svc.Upload(ctx, "a", domain.UploadRequest{FileName: "a.jpg", FileData: "!!!", MimeType: "image/jpeg"})
	require.ErrorIs(t, err, usecase.ErrUploadBadEncoding)
}

func TestUpload_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockImageStorage(ctrl)
	storage.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))

	svc := usecase.NewUploadService(storage, 0, noopLogger{})
	_, err := svc.Upload(context.Background(), "a", domain.UploadRequest{
		FileName: "a.webp", FileData: base64.StdEncoding.EncodeToString([]byte("x")), MimeType: "image/webp",
	})
	require.ErrorContains(t, err, "upload failed")
}
