//go:build !integration

package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/seafood-shop/internal/catalog"
	"github.com/Gunvolt24/seafood-shop/internal/domain"
)

// --- Бенчмарки ---

// Базовый бенч: GET /api/products из кэша — сравниваем LEAN vs FULL пайплайн.
func BenchmarkHTTP_GetProducts(b *testing.B) {
	h := NewHandler(Services{Catalog: svcCatalog{res: benchCatalog(50)}}, nopLogger{}, 2*time.Second)

	lean := makeLeanRouter(h)
	full := makeFullRouter(h)

	b.Run("lean/no-mw", func(b *testing.B) {
		benchServeGET(b, lean, "/api/products")
	})
	b.Run("full/prod-mw", func(b *testing.B) {
		benchServeGET(b, full, "/api/products")
	})
}

// Потолок без маршалинга: тот же каталог, но заранее закодированный JSON.
func BenchmarkHTTP_GetProducts_PreMarshaledBytes(b *testing.B) {
	raw, _ := json.Marshal(newCatalogResponse(benchCatalog(50)))

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/api/products", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", raw)
	})

	benchServeGET(b, r, "/api/products")
}

// Размер каталога: 10/100/1000 — рост аллокаций и времени сериализации.
func BenchmarkHTTP_GetProducts_Size(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run("N="+strconv.Itoa(n), func(b *testing.B) {
			h := NewHandler(Services{Catalog: svcCatalog{res: benchCatalog(n)}}, nopLogger{}, 2*time.Second)
			benchServeGET(b, makeLeanRouter(h), "/api/products")
		})
	}
}

// Ошибочный путь (404): "цена" роутера и 404-хендлера.
func BenchmarkHTTP_404(b *testing.B) {
	h := NewHandler(Services{Catalog: svcCatalog{res: benchCatalog(1)}}, nopLogger{}, 2*time.Second)
	r := makeFullRouter(h)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, "/nope", http.NoBody)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusNotFound {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}

// --- nopLogger — логгер, который не делает ничего. ---

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// --- Стабы ---

type svcCatalog struct{ res *domain.CatalogResult }

func (s svcCatalog) GetCatalog(context.Context) (*domain.CatalogResult, error) { return s.res, nil }

// benchCatalog — n товаров в трёх категориях, прогнанных через настоящий трансформер.
func benchCatalog(n int) *domain.CatalogResult {
	cats := []domain.RawCategory{{ID: "c1", Name: "Рыба"}, {ID: "c2", Name: "Икра"}, {ID: "c3", Name: "Креветки"}}
	rows := make([]domain.RawProduct, 0, n)
	for i := 0; i < n; i++ {
		cat := cats[i%len(cats)]
		rows = append(rows, domain.RawProduct{
			ID:            "p" + strconv.Itoa(i),
			Name:          cat.Name + " #" + strconv.Itoa(i),
			Price:         decimal.NewFromInt(int64(100 + i)).String(),
			StockQuantity: strconv.Itoa(i % 7),
			Unit:          "кг",
			IsFeatured:    i%10 == 0,
			Category:      &cat,
			Images:        []domain.RawImage{{StoragePath: "products/p" + strconv.Itoa(i) + ".jpg", IsPrimary: true}},
		})
	}
	res := catalog.NewTransformer(catalog.Options{StorageBaseURL: "/uploads"}).Transform(rows)
	now := time.Now()
	return &domain.CatalogResult{
		Catalog:  catalog.Summarize(res.Products, 5, now),
		Cached:   true,
		StoredAt: now,
		TTL:      5 * time.Minute,
	}
}

// --- функции-помощники ---

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New() // без Recovery/otel/logger — получаем меньшую аллокацию
	r.GET("/api/products", h.getProducts)
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	// prod пайплайн из NewRouter
	return NewRouter(h, RouterOptions{})
}

func benchServeGET(b *testing.B, r *gin.Engine, path string) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	// Параллельный режим ближе к реальности без TCP
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, path, http.NoBody)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusOK {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}
