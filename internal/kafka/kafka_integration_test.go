//go:build integration

package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/seafood-shop/internal/cache/memory"
	"github.com/Gunvolt24/seafood-shop/internal/domain"
	ikafka "github.com/Gunvolt24/seafood-shop/internal/kafka"
	"github.com/Gunvolt24/seafood-shop/internal/ports"
	"github.com/Gunvolt24/seafood-shop/internal/testutil"
	"github.com/Gunvolt24/seafood-shop/internal/usecase"
	"github.com/Gunvolt24/seafood-shop/pkg/logger"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

// emptyStore — хранилище не участвует: проверяем только кэш.
type emptyStore struct{}

func (emptyStore) ListActiveProducts(context.Context) ([]domain.RawProduct, error) { return nil, nil }

// instance — один «сервер»: кэш с тёплым каталогом и консьюмер инвалидаций.
type instance struct {
	cache    *cachemem.CatalogCache
	consumer *ikafka.Consumer
}

type eventHandler interface {
	HandleEvent(ctx context.Context, raw []byte) error
}

// newInstance — override подменяет обработчик (nil — настоящий CatalogService).
func newInstance(t *testing.T, brokers []string, topic, group string, logg ports.Logger, override eventHandler) *instance {
	t.Helper()
	cache := cachemem.NewCatalogCache(time.Hour)
	cache.Put(context.Background(), &domain.Catalog{Total: 1}, cache.Generation(context.Background()))

	var h eventHandler = usecase.NewCatalogService(emptyStore{}, cache, nil, logg, 0)
	if override != nil {
		h = override
	}

	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    "first",
		ProcessTimeout: 3 * time.Second,
		RetryInitial:   200 * time.Millisecond,
		RetryMax:       2 * time.Second,
		// без лимита: в тесте передоставки событие не должно закоммититься
		MaxAttempts: 0,
	}, h, logg)
	return &instance{cache: cache, consumer: consumer}
}

func (i *instance) fresh() bool {
	_, _, ok := i.cache.Get(context.Background())
	return ok
}

func startKafka(t *testing.T) (*testutil.KafkaEnv, ports.Logger, context.Context) {
	t.Helper()

	// длинный контекст только на старт контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "catalog-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	logg, closer, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	t.Cleanup(cancel)
	return kf, logg, ctx
}

func waitStale(t *testing.T, i *instance, within time.Duration) {
	t.Helper()
	deadline := time.Now().Add(within)
	for i.fresh() {
		if time.Now().After(deadline) {
			t.Fatalf("catalog cache was not invalidated in %s", within)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// 1) Событие от Publisher доходит до каждого инстанса (у каждого своя группа)
func TestKafka_CatalogChanged_InvalidatesAllInstances_TC(t *testing.T) {
	kf, logg, ctx := startKafka(t)

	topic, group := testutil.TopicAndGroup(kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.CreateTopic(ctx, kf.Brokers, topic))

	a := newInstance(t, kf.Brokers, topic, group+"-a", logg, nil)
	b := newInstance(t, kf.Brokers, topic, group+"-b", logg, nil)

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	go func() { _ = a.consumer.Run(runCtx) }()
	go func() { _ = b.consumer.Run(runCtx) }()

	pub := ikafka.NewPublisher(ikafka.PublisherConfig{Brokers: kf.Brokers, CatalogTopic: topic, OrdersTopic: topic + "-orders"}, logg)
	defer pub.Close()

	require.True(t, a.fresh())
	require.NoError(t, pub.PublishCatalogEvent(ctx, domain.CatalogEvent{
		Type: domain.EventProductUpdated, EntityID: "p1", OccurredAt: time.Now().UTC(),
	}))

	waitStale(t, a, 20*time.Second)
	waitStale(t, b, 20*time.Second)

	// устаревший каталог остаётся доступен как fallback
	_, _, ok := a.cache.Stale(ctx)
	require.True(t, ok)
}

// 2) Мусор в топике пропускается, следующее событие обрабатывается
func TestKafka_SkipGarbage_ThenInvalidate_TC(t *testing.T) {
	kf, logg, ctx := startKafka(t)

	topic, group := testutil.TopicAndGroup(kf.BaseTopic + "-garbage-" + safe(t))
	require.NoError(t, testutil.CreateTopic(ctx, kf.Brokers, topic))

	writeMsg(t, ctx, kf.Brokers, topic, []byte("not-a-json"))

	inst := newInstance(t, kf.Brokers, topic, group, logg, nil)
	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	go func() { _ = inst.consumer.Run(runCtx) }()

	// мусор не должен сбросить кэш
	time.Sleep(2 * time.Second)
	require.True(t, inst.fresh())

	writeMsg(t, ctx, kf.Brokers, topic, []byte(`{"type":"category.deleted","entityId":"c1"}`))
	waitStale(t, inst, 20*time.Second)
}

// 3) At-least-once: без коммита событие передоставляется после перезапуска
func TestKafka_Redelivery_AfterRestart_NoCommit_TC(t *testing.T) {
	kf, logg, ctx := startKafka(t)

	topic, group := testutil.TopicAndGroup(kf.BaseTopic + "-redelivery-" + safe(t))
	require.NoError(t, testutil.CreateTopic(ctx, kf.Brokers, topic))
	writeMsg(t, ctx, kf.Brokers, topic, []byte(`{"type":"product.deleted","entityId":"p9"}`))

	// Фаза 1: обработчик всегда падает временной ошибкой => оффсет не коммитится
	failing := newInstance(t, kf.Brokers, topic, group, logg, alwaysFailHandler{})
	runCtx1, cancelRun1 := context.WithCancel(ctx)
	go func() { _ = failing.consumer.Run(runCtx1) }()
	time.Sleep(2 * time.Second)
	cancelRun1()
	_ = failing.consumer.Close()

	// Фаза 2: та же группа, нормальный обработчик
	inst := newInstance(t, kf.Brokers, topic, group, logg, nil)
	runCtx2, cancelRun2 := context.WithCancel(ctx)
	defer cancelRun2()
	go func() { _ = inst.consumer.Run(runCtx2) }()

	waitStale(t, inst, 25*time.Second)
}

// -----------------функции-помощники-----------------

func writeMsg(t *testing.T, ctx context.Context, brokers []string, topic string, payload []byte) {
	t.Helper()
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.LeastBytes{},
	}
	defer w.Close()
	require.NoError(t, w.WriteMessages(ctx, kafka.Message{Value: payload}))
}

// временная "сетеподобная" ошибка
type tempNetErr struct{}

func (tempNetErr) Error() string   { return "temporary failure" }
func (tempNetErr) Temporary() bool { return true }
func (tempNetErr) Timeout() bool   { return true }

type alwaysFailHandler struct{}

func (alwaysFailHandler) HandleEvent(context.Context, []byte) error { return tempNetErr{} }
