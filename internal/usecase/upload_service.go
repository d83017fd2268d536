package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/internal/ports"
	"github.com/Gunvolt24/seafood-shop/pkg/metrics"
)

var (
	ErrUploadMissingFields = errors.New("missing required fields: fileName, fileData, mimeType")
	ErrUploadBadEncoding   = errors.New("file data is not valid base64")
	ErrUploadTooLarge      = errors.New("file too large")
	ErrUploadUnsupported   = errors.New("unsupported file type")
)

// DefaultMaxUploadBytes — предел размера изображения после декодирования.
const DefaultMaxUploadBytes int64 = 5 * 1024 * 1024

var allowedImageExt = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "svg": {}, "webp": {},
}

var skuUnsafe = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

var _ ports.ImageUploadService = (*UploadService)(nil)

// UploadService — приём изображений товаров в base64.
type UploadService struct {
	storage  ports.ImageStorage
	maxBytes int64
	log      ports.Logger
	now      func() time.Time
	suffix   func() string
}

// NewUploadService — DI-конструктор; maxBytes <= 0 — 5 МиБ.
func NewUploadService(storage ports.ImageStorage, maxBytes int64, log ports.Logger) *UploadService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &UploadService{storage: storage, maxBytes: maxBytes, log: log, now: time.Now, suffix: randomSuffix}
}

// Upload — валидирует и сохраняет файл по пути products/{sku}-{ts}-{rand}.{ext}
// или uploads/{ts}-{rand}.{ext}.
func (s *UploadService) Upload(ctx context.Context, actor string, req domain.UploadRequest) (*domain.StoredImage, error) {
	if strings.TrimSpace(req.FileName) == "" || req.FileData == "" || strings.TrimSpace(req.MimeType) == "" {
		metrics.ImageUploads.WithLabelValues("rejected").Inc()
		return nil, ErrUploadMissingFields
	}

	objectPath, err := s.objectPath(req.FileName, req.ProductSKU)
	if err != nil {
		metrics.ImageUploads.WithLabelValues("rejected").Inc()
		return nil, err
	}

	// Грубая оценка до декодирования, чтобы не аллоцировать заведомо лишнее.
	if int64(base64.StdEncoding.DecodedLen(len(req.FileData))) > s.maxBytes+64 {
		metrics.ImageUploads.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%w: maximum size %d bytes", ErrUploadTooLarge, s.maxBytes)
	}
	data, err := decodeBase64(req.FileData)
	if err != nil {
		metrics.ImageUploads.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%w: %v", ErrUploadBadEncoding, err)
	}
	if int64(len(data)) > s.maxBytes {
		metrics.ImageUploads.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%w: maximum size %d bytes", ErrUploadTooLarge, s.maxBytes)
	}

	stored, err := s.storage.Save(ctx, objectPath, data, req.MimeType)
	if err != nil {
		metrics.ImageUploads.WithLabelValues("error").Inc()
		s.log.Errorf(ctx, "image upload failed path=%s err=%v", objectPath, err)
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	stored.FileName = req.FileName
	stored.FileSize = int64(len(data))
	stored.MimeType = req.MimeType
	stored.UploadedBy = actor
	stored.UploadedAt = s.now().UTC()

	metrics.ImageUploads.WithLabelValues("ok").Inc()
	s.log.Infof(ctx, "image uploaded path=%s size=%d by=%s", stored.StoragePath, stored.FileSize, actor)
	return stored, nil
}

func (s *UploadService) objectPath(fileName, sku string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(fileName), "."))
	if _, ok := allowedImageExt[ext]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUploadUnsupported, ext)
	}
	ts := strconv.FormatInt(s.now().UnixMilli(), 10)
	if sku = skuUnsafe.ReplaceAllString(strings.TrimSpace(sku), ""); sku != "" {
		return fmt.Sprintf("products/%s-%s-%s.%s", sku, ts, s.suffix(), ext), nil
	}
	return fmt.Sprintf("uploads/%s-%s.%s", ts, s.suffix(), ext), nil
}

// decodeBase64 — принимает и data:...;base64, префикс, и сырой base64.
func decodeBase64(raw string) ([]byte, error) {
	if i := strings.Index(raw, ";base64,"); i >= 0 && strings.HasPrefix(raw, "data:") {
		raw = raw[i+len(";base64,"):]
	}
	raw = strings.TrimSpace(raw)
	if data, err := base64.StdEncoding.DecodeString(raw); err == nil {
		return data, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(raw, "="))
}

func randomSuffix() string {
	var b [3]byte
	if _, err := rand.Read(b[:]); err != nil {
		return strconv.FormatInt(time.Now().UnixNano()%1_000_000, 36)
	}
	return hex.EncodeToString(b[:])
}
