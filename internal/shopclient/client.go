// Пакет shopclient — клиент публичного API витрины для cmd/shop.
package shopclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/pkg/ctxmeta"
)

// APIError — ответ сервера со статусом не 2xx.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api %d: %s", e.Status, e.Message)
}

// Catalog — ответ GET /api/products.
type Catalog struct {
	Products      []domain.Product  `json:"products"`
	Categories    []domain.Category `json:"categories"`
	TopCategories []domain.Category `json:"topCategories"`
	Total         int               `json:"total"`
	InStock       int               `json:"inStock"`
	Featured      int               `json:"featured"`
	Cache         struct {
		Cached bool `json:"cached"`
		Stale  bool `json:"stale"`
	} `json:"cache"`
}

// Find — товар по id.
func (c *Catalog) Find(id string) (*domain.Product, bool) {
	for i := range c.Products {
		if c.Products[i].ID == id {
			return &c.Products[i], true
		}
	}
	return nil, false
}

// Client — HTTP-клиент витрины.
type Client struct {
	base string
	http *http.Client
}

// New — base вида http://localhost:8080; timeout <= 0 — 10 секунд.
func New(base string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{base: strings.TrimRight(base, "/"), http: &http.Client{Timeout: timeout}}
}

// Catalog — текущий каталог.
func (c *Client) Catalog(ctx context.Context) (*Catalog, error) {
	var out Catalog
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitOrder — оформить заказ; сервер пересчитывает цены и суммы.
func (c *Client) SubmitOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	var out struct {
		Order *domain.Order `json:"order"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/orders", order, &out); err != nil {
		return nil, err
	}
	if out.Order == nil {
		return nil, fmt.Errorf("empty order in response")
	}
	return out.Order, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		req.Header.Set("X-Request-ID", rid)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		_ = json.NewDecoder(io.LimitReader(resp.Body, 64*1024)).Decode(&e)
		if e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Code: e.Code, Message: e.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
