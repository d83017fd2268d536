// Пакет disk — хранилище изображений товаров в локальном каталоге,
// который HTTP-сервер отдаёт как статику.
package disk

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/internal/ports"
)

var _ ports.ImageStorage = (*Storage)(nil)

// ErrBadPath — путь объекта выходит за пределы бакета.
var ErrBadPath = errors.New("invalid object path")

// Storage — файлы лежат в {root}/{bucket}/{objectPath}, публичный адрес
// {publicBase}/{bucket}/{objectPath}.
type Storage struct {
	root       string
	bucket     string
	publicBase string
}

// New — создаёт каталог бакета, если его нет.
func New(root, bucket, publicBase string) (*Storage, error) {
	if bucket == "" {
		return nil, errors.New("bucket is required")
	}
	if err := os.MkdirAll(filepath.Join(root, bucket), 0o755); err != nil {
		return nil, fmt.Errorf("create bucket dir: %w", err)
	}
	return &Storage{root: root, bucket: bucket, publicBase: strings.TrimRight(publicBase, "/")}, nil
}

// Save — без перезаписи: существующий объект даёт domain.ErrConflict.
func (s *Storage) Save(ctx context.Context, objectPath string, data []byte, _ string) (*domain.StoredImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean := path.Clean(objectPath)
	if clean == "." || path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return nil, fmt.Errorf("%w: %q", ErrBadPath, objectPath)
	}

	full := filepath.Join(s.root, s.bucket, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return nil, fmt.Errorf("create dir: %w", err)
	}

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("%w: %s already exists", domain.ErrConflict, clean)
	}
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(full)
		return nil, fmt.Errorf("write: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(full)
		return nil, fmt.Errorf("close: %w", err)
	}

	return &domain.StoredImage{
		Bucket:      s.bucket,
		StoragePath: clean,
		PublicURL:   s.PublicURL(clean),
	}, nil
}

// PublicURL — адрес объекта для клиента.
func (s *Storage) PublicURL(objectPath string) string {
	return s.publicBase + "/" + s.bucket + "/" + strings.TrimLeft(objectPath, "/")
}
