//go:build integration

package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/auth"
	cachemem "github.com/Gunvolt24/seafood-shop/internal/cache/memory"
	"github.com/Gunvolt24/seafood-shop/internal/catalog"
	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/internal/kafka"
	pgrepo "github.com/Gunvolt24/seafood-shop/internal/repo/postgres"
	"github.com/Gunvolt24/seafood-shop/internal/storage/disk"
	"github.com/Gunvolt24/seafood-shop/internal/testutil"
	rest "github.com/Gunvolt24/seafood-shop/internal/transport/http"
	"github.com/Gunvolt24/seafood-shop/internal/usecase"
	"github.com/Gunvolt24/seafood-shop/pkg/logger"
	"github.com/Gunvolt24/seafood-shop/pkg/validate"
	"github.com/stretchr/testify/require"
)

const jwtSecret = "integration-secret"

type stack struct {
	url    string
	tokens *auth.TokenManager
}

// startStack — весь HTTP-стек поверх Postgres из testcontainers.
func startStack(t *testing.T, ctx context.Context) (*stack, *testutil.PGContainer) {
	t.Helper()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	store, err := disk.New(t.TempDir(), catalog.DefaultBucket, "/uploads")
	require.NoError(t, err)

	tokens, err := auth.NewTokenManager(jwtSecret, 24*time.Hour)
	require.NoError(t, err)

	catalogSvc := usecase.NewCatalogService(
		pgrepo.NewCatalogRepository(pg.Pool),
		cachemem.NewCatalogCache(5*time.Minute),
		catalog.NewTransformer(catalog.Options{StorageBaseURL: "/uploads"}),
		logg, 5,
	)
	publisher := kafka.NopPublisher{}
	h := rest.NewHandler(rest.Services{
		Catalog: catalogSvc,
		Admin: usecase.NewAdminService(
			pgrepo.NewProductRepository(pg.Pool),
			pgrepo.NewCategoryRepository(pg.Pool),
			pgrepo.NewDashboardRepository(pg.Pool),
			catalogSvc, publisher, logg,
		),
		Auth: usecase.NewAuthService(
			pgrepo.NewAdminUserRepository(pg.Pool), tokens,
			auth.NewAttemptLimiter(5, 15*time.Minute, nil), logg,
		),
		Uploads: usecase.NewUploadService(store, 0, logg),
		Orders:  usecase.NewOrderService(catalogSvc, validate.NewOrderValidator(), publisher, logg, usecase.DefaultDeliveryFee),
	}, logg, 5*time.Second)

	ts := httptest.NewServer(rest.NewRouter(h, rest.RouterOptions{}))
	t.Cleanup(ts.Close)
	return &stack{url: ts.URL, tokens: tokens}, pg
}

func call(t *testing.T, method, url, body, token string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var m map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	return resp, m
}

// Каталог: промах, затем попадание; изображение из storage_path.
func TestHTTP_Catalog_MissThenHit_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	s, pg := startStack(t, ctx)

	catID, err := testutil.SeedCategory(ctx, pg.Pool, "Рыба")
	require.NoError(t, err)
	rec, err := pgrepo.NewProductRepository(pg.Pool).CreateProduct(ctx, testutil.MakeProduct(testutil.WithCategory(catID), testutil.WithStock(3)))
	require.NoError(t, err)
	require.NoError(t, testutil.SeedImage(ctx, pg.Pool, rec.ID, domain.RawImage{StoragePath: "products/a.jpg", IsPrimary: true}))

	resp, m := call(t, http.MethodGet, s.url+"/api/products", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, rest.CacheMiss, resp.Header.Get("X-Cache"))
	require.EqualValues(t, 1, m["total"])
	p := m["products"].([]any)[0].(map[string]any)
	require.Equal(t, "/uploads/product-images/products/a.jpg", p["image"])
	require.Equal(t, "Рыба", p["category"])
	require.Equal(t, true, p["isInStock"])

	resp, m = call(t, http.MethodGet, s.url+"/api/products", "", "")
	require.Equal(t, rest.CacheHit, resp.Header.Get("X-Cache"))
	require.Equal(t, true, m["cache"].(map[string]any)["cached"])
}

// Вход, изменение каталога и сброс кэша: следующий GET снова идёт в базу.
func TestHTTP_AdminFlow_InvalidatesCatalog_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	s, pg := startStack(t, ctx)
	_, err := testutil.SeedAdmin(ctx, pg.Pool, "admin@shop.ru", "s3cret")
	require.NoError(t, err)

	resp, _ := call(t, http.MethodGet, s.url+"/api/products", "", "")
	require.Equal(t, rest.CacheMiss, resp.Header.Get("X-Cache"))

	resp, m := call(t, http.MethodPost, s.url+"/api/admin/login", `{"email":"admin@shop.ru","password":"s3cret"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, m)
	token := m["token"].(string)

	resp, m = call(t, http.MethodPost, s.url+"/api/admin/products", `{"name":"Икра красная","price":2500,"stock_quantity":4}`, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode, m)

	resp, m = call(t, http.MethodGet, s.url+"/api/products", "", "")
	require.Equal(t, rest.CacheMiss, resp.Header.Get("X-Cache"))
	require.EqualValues(t, 1, m["total"])

	resp, m = call(t, http.MethodGet, s.url+"/api/admin/dashboard", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := m["data"].(map[string]any)
	require.EqualValues(t, 1, data["totalProducts"])
	require.EqualValues(t, 1, data["lowStockProducts"])
}

// Просроченный токен отклоняется с TOKEN_EXPIRED.
func TestHTTP_ExpiredToken_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	s, _ := startStack(t, ctx)

	past, err := auth.NewTokenManager(jwtSecret, time.Hour, auth.WithTokenClock(func() time.Time {
		return time.Now().Add(-48 * time.Hour)
	}))
	require.NoError(t, err)
	old, _, err := past.Issue(domain.AdminSession{ID: "u", Email: "admin@shop.ru", Role: "admin", IsAdmin: true})
	require.NoError(t, err)

	resp, m := call(t, http.MethodGet, s.url+"/api/admin/products", "", old)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, rest.CodeTokenExpired, m["code"])
}

// Пятая неудачная попытка блокирует вход.
func TestHTTP_LoginLockout_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	s, _ := startStack(t, ctx)
	for i := 0; i < 5; i++ {
		resp, _ := call(t, http.MethodPost, s.url+"/api/admin/login", `{"email":"who@shop.ru","password":"bad"}`, "")
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
	resp, m := call(t, http.MethodPost, s.url+"/api/admin/login", `{"email":"who@shop.ru","password":"bad"}`, "")
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	require.EqualValues(t, 15, m["remainingTime"])
}

// Заказ пересчитывается по ценам каталога и не сохраняется.
func TestHTTP_OrderSubmit_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	s, pg := startStack(t, ctx)
	rec, err := pgrepo.NewProductRepository(pg.Pool).CreateProduct(ctx, testutil.MakeProduct())
	require.NoError(t, err)

	raw, err := json.Marshal(testutil.MakeOrder(rec.ID, 2))
	require.NoError(t, err)

	resp, m := call(t, http.MethodPost, s.url+"/api/orders", string(raw), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	order := m["order"].(map[string]any)
	require.EqualValues(t, 2080, order["total"])
	require.Equal(t, "+79123456789", order["phone"])
	require.Equal(t, rec.Name, order["items"].([]any)[0].(map[string]any)["name"])
}
