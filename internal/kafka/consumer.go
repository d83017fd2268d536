package kafka

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/internal/ports"
	"github.com/Gunvolt24/seafood-shop/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — часть kafka.Reader, которой пользуется Consumer.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// eventHandler — реакция на одно событие каталога (usecase.CatalogService.HandleEvent).
type eventHandler interface {
	HandleEvent(ctx context.Context, raw []byte) error
}

// outcome — чем закончилась обработка сообщения.
type outcome string

const (
	outcomeHandled outcome = "handled" // обработано, коммит
	outcomeInvalid outcome = "invalid" // мусор в топике, коммит без обработки
	outcomeDropped outcome = "dropped" // попытки исчерпаны, коммит; кэш догонит по TTL
)

// Consumer — читает catalog.changed и сбрасывает локальный кэш каталога.
// Временные ошибки обработчика повторяются на том же сообщении; пока оно не закоммичено,
// после рестарта оно придёт снова (at-least-once).
type Consumer struct {
	reader         reader
	handler        eventHandler
	log            ports.Logger
	processTimeout time.Duration
	maxAttempts    int
	fetchRetry     *backoff
	handleRetry    *backoff
	closeOnce      sync.Once
	closeErr       error
}

// NewConsumer — консьюмер поверх kafka.Reader с ручным коммитом.
func NewConsumer(cfg *ConsumerConfig, handler eventHandler, log ports.Logger) *Consumer {
	c := cfg.withDefaults()
	return newConsumer(kafka.NewReader(c.ReaderConfig()), handler, log, c, time.Now().UnixNano())
}

func newConsumer(r reader, h eventHandler, log ports.Logger, cfg ConsumerConfig, seed int64) *Consumer {
	return &Consumer{
		reader:         r,
		handler:        h,
		log:            log,
		processTimeout: cfg.ProcessTimeout,
		maxAttempts:    cfg.MaxAttempts,
		fetchRetry:     newBackoff(cfg.RetryInitial, cfg.RetryMax, seed),
		handleRetry:    newBackoff(cfg.RetryInitial, cfg.RetryMax, seed+1),
	}
}

// Run — цикл чтения до отмены ctx. Ошибки брокера повторяются с backoff и не завершают цикл.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "kafka consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			delay := c.fetchRetry.next()
			c.log.Warnf(ctx, "kafka fetch failed, retry in %s: %v", delay, err)
			if !sleepCtx(ctx, delay) {
				return ctx.Err()
			}
			continue
		}
		c.fetchRetry.reset()
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		res, err := c.process(ctx, &msg)
		if err != nil {
			// контекст отменён посреди повторов: без коммита
			return err
		}
		metrics.KafkaMessagesHandled.WithLabelValues(rc.Topic, string(res)).Inc()

		if cErr := c.reader.CommitMessages(ctx, msg); cErr != nil {
			c.log.Warnf(ctx, "kafka commit failed offset=%d: %v", msg.Offset, cErr)
		}
	}
}

// process — обрабатывает сообщение, повторяя временные ошибки.
// Ошибка возвращается только при отмене ctx.
func (c *Consumer) process(ctx context.Context, msg *kafka.Message) (outcome, error) {
	defer c.handleRetry.reset()

	for attempt := 1; ; attempt++ {
		hctx, cancel := context.WithTimeout(ctx, c.processTimeout)
		err := c.handler.HandleEvent(hctx, msg.Value)
		cancel()

		switch {
		case err == nil:
			return outcomeHandled, nil
		case errors.Is(err, domain.ErrInvalidEvent):
			c.log.Warnf(ctx, "skip invalid catalog event offset=%d: %v", msg.Offset, err)
			return outcomeInvalid, nil
		case ctx.Err() != nil:
			return "", ctx.Err()
		case c.maxAttempts > 0 && attempt >= c.maxAttempts:
			c.log.Errorf(ctx, "drop catalog event offset=%d after %d attempts: %v", msg.Offset, attempt, err)
			return outcomeDropped, nil
		}

		delay := c.handleRetry.next()
		c.log.Warnf(ctx, "catalog event offset=%d attempt %d failed, retry in %s: %v", msg.Offset, attempt, delay, err)
		if !sleepCtx(ctx, delay) {
			return "", ctx.Err()
		}
	}
}

// Close — закрывает reader; повторные вызовы возвращают результат первого.
func (c *Consumer) Close() error {
	c.closeOnce.Do(func() { c.closeErr = c.reader.Close() })
	return c.closeErr
}
