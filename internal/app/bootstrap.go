package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Gunvolt24/seafood-shop/config"
	"github.com/Gunvolt24/seafood-shop/internal/auth"
	cachemem "github.com/Gunvolt24/seafood-shop/internal/cache/memory"
	"github.com/Gunvolt24/seafood-shop/internal/catalog"
	"github.com/Gunvolt24/seafood-shop/internal/kafka"
	"github.com/Gunvolt24/seafood-shop/internal/ports"
	"github.com/Gunvolt24/seafood-shop/internal/repo/postgres"
	"github.com/Gunvolt24/seafood-shop/internal/storage/disk"
	rest "github.com/Gunvolt24/seafood-shop/internal/transport/http"
	"github.com/Gunvolt24/seafood-shop/internal/usecase"
	"github.com/Gunvolt24/seafood-shop/pkg/logger"
	"github.com/Gunvolt24/seafood-shop/pkg/metrics"
	"github.com/Gunvolt24/seafood-shop/pkg/telemetry"
	"github.com/Gunvolt24/seafood-shop/pkg/validate"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер
	KafkaConsumer   ports.MessageConsumer // консьюмер событий каталога; nil — Kafka выключена
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// jwtSecret — секрет из конфигурации; без него генерируется случайный,
// и выданные токены перестают действовать после рестарта.
func jwtSecret(ctx context.Context, configured string, log ports.Logger) (string, error) {
	if configured != "" {
		return configured, nil
	}
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate jwt secret: %w", err)
	}
	log.Warnf(ctx, "SHOP_AUTH_JWT_SECRET is empty, using a random secret; admin tokens will not survive restart")
	return hex.EncodeToString(b), nil
}

// instanceGroupID — своя consumer group на инстанс, чтобы событие дошло до каждого кэша.
func instanceGroupID(base string) string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "shop"
	}
	return fmt.Sprintf("%s-%s-%s", base, host, uuid.NewString()[:8])
}

// uploadsPath — локальная раздача загруженных файлов только для относительной базы URL.
func uploadsPath(publicBase string) string {
	if strings.HasPrefix(publicBase, "/") {
		return strings.TrimRight(publicBase, "/")
	}
	return ""
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	closers := []func(){func() {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	}}
	// Очистка ресурсов в обратном порядке.
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	fail := func(err error) (*App, Cleanup, error) {
		cleanup()
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	deliveryFee, err := decimal.NewFromString(cfg.Cart.DeliveryFee)
	if err != nil {
		return fail(fmt.Errorf("parse delivery fee %q: %w", cfg.Cart.DeliveryFee, err))
	}

	// Пул подключений Postgres; без DSN каталог отвечает ErrStoreMisconfigured, админка не поднимается.
	var pool *pgxpool.Pool
	if cfg.Postgres.DSN != "" {
		pool, err = postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			return fail(err)
		}
		closers = append(closers, pool.Close)
	} else {
		logg.Warnf(ctx, "postgres DSN is empty: catalog store is not configured")
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	if cfg.Tracing.Enabled {
		shutdownTrace, tErr := telemetry.SetupTracing(ctx, telemetry.Options{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			closers = append(closers, func() {
				if terr := shutdownTrace(context.Background()); terr != nil {
					logg.Warnf(ctx, "shutdown tracing: %v", terr)
				}
			})
		}
	}

	// Публикация событий: Kafka или no-op.
	var publisher ports.EventPublisher = kafka.NopPublisher{}
	if cfg.Kafka.Enabled {
		publisher = kafka.NewPublisher(kafka.PublisherConfig{
			Brokers:      cfg.Kafka.Brokers,
			CatalogTopic: cfg.Kafka.CatalogTopic,
			OrdersTopic:  cfg.Kafka.OrdersTopic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		}, logg)
		closers = append(closers, func() {
			if perr := publisher.Close(); perr != nil {
				logg.Warnf(ctx, "kafka publisher close error: %v", perr)
			}
		})
	}

	// Витрина: хранилище → трансформер → кэш.
	transformer := catalog.NewTransformer(catalog.Options{
		StorageBaseURL:      cfg.Storage.PublicBaseURL,
		Bucket:              cfg.Storage.Bucket,
		Placeholder:         cfg.Catalog.Placeholder,
		DefaultCategoryName: cfg.Catalog.DefaultCategory,
		DefaultUnit:         cfg.Catalog.DefaultUnit,
	})
	var store ports.CatalogStore
	if pool != nil {
		store = postgres.NewCatalogRepository(pool)
	}
	catalogSvc := usecase.NewCatalogService(
		store,
		cachemem.NewCatalogCache(cfg.Cache.TTL),
		transformer,
		logg,
		cfg.Catalog.TopCategories,
	)

	services := rest.Services{
		Catalog: catalogSvc,
		Orders:  usecase.NewOrderService(catalogSvc, validate.NewOrderValidator(), publisher, logg, deliveryFee),
	}

	if pool != nil {
		secret, sErr := jwtSecret(ctx, cfg.Auth.JWTSecret, logg)
		if sErr != nil {
			return fail(sErr)
		}
		tokens, tErr := auth.NewTokenManager(secret, cfg.Auth.TokenTTL)
		if tErr != nil {
			return fail(tErr)
		}
		images, dErr := disk.New(cfg.Storage.Dir, cfg.Storage.Bucket, cfg.Storage.PublicBaseURL)
		if dErr != nil {
			return fail(dErr)
		}

		services.Admin = usecase.NewAdminService(
			postgres.NewProductRepository(pool),
			postgres.NewCategoryRepository(pool),
			postgres.NewDashboardRepository(pool),
			catalogSvc,
			publisher,
			logg,
		)
		services.Auth = usecase.NewAuthService(
			postgres.NewAdminUserRepository(pool),
			tokens,
			auth.NewAttemptLimiter(cfg.Auth.MaxLoginAttempts, cfg.Auth.LockoutWindow, nil),
			logg,
		)
		services.Uploads = usecase.NewUploadService(images, cfg.Storage.MaxUploadBytes, logg)
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(services, logg, cfg.HTTP.HandlerTimeout)
	opts := rest.RouterOptions{
		StaticDir:       cfg.HTTP.StaticDir,
		UploadsPath:     uploadsPath(cfg.Storage.PublicBaseURL),
		OtelServiceName: otelServiceName,
		MaxUploadBytes:  cfg.Storage.MaxUploadBytes,
	}
	if opts.UploadsPath != "" {
		opts.UploadsDir = cfg.Storage.Dir
	}
	router := rest.NewRouter(httpHandler, opts)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Консьюмер событий каталога: сбрасывает локальный кэш по изменениям с других инстансов.
	if cfg.Kafka.Enabled {
		consumer := kafka.NewConsumer(&kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        instanceGroupID(cfg.Kafka.GroupID),
			Topic:          cfg.Kafka.CatalogTopic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
			MaxAttempts:    cfg.Kafka.MaxAttempts,
		}, catalogSvc, logg)
		app.KafkaConsumer = consumer
		closers = append(closers, func() {
			if cerr := consumer.Close(); cerr != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", cerr)
			}
		})
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	// Запуск консьюмера.
	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Остановка Kafka-консьюмера
	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
