package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/internal/ports"
	"github.com/Gunvolt24/seafood-shop/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var (
	_ ports.EventPublisher = (*Publisher)(nil)
	_ ports.EventPublisher = NopPublisher{}
)

// writer — контракт над kafka.Writer для подмены в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PublisherConfig — топики задаются на сообщение, writer общий.
type PublisherConfig struct {
	Brokers      []string
	CatalogTopic string
	OrdersTopic  string
	WriteTimeout time.Duration
}

// Publisher — отправка событий каталога и заказов.
type Publisher struct {
	writer       writer
	catalogTopic string
	ordersTopic  string
	log          ports.Logger
	closeOnce    sync.Once
}

// NewPublisher — синхронный writer с подтверждением от лидера партиции.
func NewPublisher(cfg PublisherConfig, log ports.Logger) *Publisher {
	wt := cfg.WriteTimeout
	if wt <= 0 {
		wt = 3 * time.Second
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		WriteTimeout:           wt,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	return &Publisher{writer: w, catalogTopic: cfg.CatalogTopic, ordersTopic: cfg.OrdersTopic, log: log}
}

// PublishCatalogEvent — ключ сообщения = id сущности (порядок событий одной сущности сохраняется).
func (p *Publisher) PublishCatalogEvent(ctx context.Context, ev domain.CatalogEvent) error {
	return p.publish(ctx, p.catalogTopic, ev.EntityID, ev)
}

// PublishOrder — событие order.submitted, ключ = id заказа.
func (p *Publisher) PublishOrder(ctx context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("publish order: nil order")
	}
	return p.publish(ctx, p.ordersTopic, order.ID, order)
}

func (p *Publisher) publish(ctx context.Context, topic, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{Topic: topic, Key: []byte(key), Value: value, Time: time.Now().UTC()})
	if err != nil {
		metrics.KafkaMessagesPublished.WithLabelValues(topic, "error").Inc()
		return fmt.Errorf("write to %s: %w", topic, err)
	}
	metrics.KafkaMessagesPublished.WithLabelValues(topic, "ok").Inc()
	return nil
}

// Close — сбрасывает буфер writer'а.
func (p *Publisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}

// NopPublisher — шина выключена: события никуда не уходят.
type NopPublisher struct{}

func (NopPublisher) PublishCatalogEvent(context.Context, domain.CatalogEvent) error { return nil }
func (NopPublisher) PublishOrder(context.Context, *domain.Order) error              { return nil }
func (NopPublisher) Close() error                                                   { return nil }
