package rest

import (
	"context"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/ports"
	"github.com/gin-gonic/gin"
)

// Services — сервисы, которые обслуживает HTTP-слой. Nil-сервис — группа маршрутов не регистрируется.
type Services struct {
	Catalog ports.CatalogReadService
	Admin   ports.AdminCatalogService
	Auth    ports.AuthService
	Uploads ports.ImageUploadService
	Orders  ports.OrderSubmitService
}

// Handler — HTTP-обработчики витрины и админ-панели.
type Handler struct {
	catalog ports.CatalogReadService
	admin   ports.AdminCatalogService
	auth    ports.AuthService
	uploads ports.ImageUploadService
	orders  ports.OrderSubmitService
	log     ports.Logger
	timeout time.Duration
}

// NewHandler — DI-конструктор; timeout <= 0 — без собственного дедлайна.
func NewHandler(svc Services, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{
		catalog: svc.Catalog,
		admin:   svc.Admin,
		auth:    svc.Auth,
		uploads: svc.Uploads,
		orders:  svc.Orders,
		log:     log,
		timeout: timeout,
	}
}

// reqCtx — контекст запроса с дедлайном обработчика.
func (h *Handler) reqCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}
