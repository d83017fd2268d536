package rest

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/seafood-shop/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// RouterOptions — статика и трейсинг роутера.
type RouterOptions struct {
	StaticDir       string // витрина: /static и index.html на /
	UploadsDir      string // загруженные изображения
	UploadsPath     string // URL-префикс для UploadsDir, например /uploads
	OtelServiceName string // пусто — без otelgin
	MaxUploadBytes  int64  // лимит файла; тело upload-image больше на base64 и JSON
}

// Лимиты тела запроса.
const (
	orderBodyLimit     = 64 << 10
	adminBodyLimit     = 1 << 20
	defaultUploadBytes = 5 << 20
)

// uploadBodyLimit — base64 раздувает файл в 4/3 раза, плюс запас на остальные поля JSON.
func uploadBodyLimit(maxFile int64) int64 {
	if maxFile <= 0 {
		maxFile = defaultUploadBytes
	}
	return maxFile*4/3 + 64<<10
}

// NewRouter — маршруты API, служебные эндпоинты и статика.
func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(httpx.RequestID())
	if opts.OtelServiceName != "" {
		r.Use(otelgin.Middleware(opts.OtelServiceName))
	}
	skip := []string{"/static"}
	if opts.UploadsPath != "" {
		skip = append(skip, opts.UploadsPath)
	}
	r.Use(httpx.RequestLogger(h.log, skip...))
	r.Use(httpx.CORS())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "code": CodeNotFound})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	if h.catalog != nil {
		api.GET("/products", h.getProducts)
	}
	if h.orders != nil {
		api.POST("/orders", httpx.LimitBody(orderBodyLimit), h.submitOrder)
	}

	if h.auth != nil {
		admin := api.Group("/admin")
		admin.POST("/login", httpx.LimitBody(adminBodyLimit), h.login)

		secured := admin.Group("", h.RequireAdmin())
		secured.GET("/verify", h.verify)

		if h.admin != nil {
			crud := secured.Group("", httpx.LimitBody(adminBodyLimit))
			crud.GET("/products", h.listProducts)
			crud.POST("/products", h.createProduct)
			crud.PUT("/products/:id", h.updateProduct)
			crud.DELETE("/products/:id", h.deleteProduct)

			crud.GET("/categories", h.listCategories)
			crud.POST("/categories", h.createCategory)
			crud.PUT("/categories/:id", h.updateCategory)
			crud.DELETE("/categories/:id", h.deleteCategory)

			crud.GET("/dashboard", h.dashboard)
		}
		if h.uploads != nil {
			secured.POST("/upload-image", httpx.LimitBody(uploadBodyLimit(opts.MaxUploadBytes)), h.uploadImage)
		}
	}

	if opts.UploadsDir != "" && strings.HasPrefix(opts.UploadsPath, "/") {
		r.Static(opts.UploadsPath, opts.UploadsDir)
	}
	if opts.StaticDir != "" {
		r.Static("/static", opts.StaticDir)
		r.StaticFile("/", filepath.Join(opts.StaticDir, "index.html"))
	}

	return r
}
