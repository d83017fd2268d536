package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	defaultProcessTimeout = 5 * time.Second
	defaultRetryInitial   = time.Second
	defaultRetryMax       = 30 * time.Second
	// события каталога маленькие и редкие: не ждём наполнения батча
	readerMaxWait = 250 * time.Millisecond
)

// ConsumerConfig — параметры читателя событий каталога.
// У каждого инстанса своя группа: инвалидацию должен получить каждый, а не один из группы.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string // first|last

	ProcessTimeout time.Duration // на одну попытку обработки
	RetryInitial   time.Duration
	RetryMax       time.Duration
	MaxAttempts    int // попыток на сообщение; <= 0 — пока не отменят контекст
}

// withDefaults — нулевые таймауты заменены значениями по умолчанию.
func (c ConsumerConfig) withDefaults() ConsumerConfig {
	if c.ProcessTimeout <= 0 {
		c.ProcessTimeout = defaultProcessTimeout
	}
	if c.RetryInitial <= 0 {
		c.RetryInitial = defaultRetryInitial
	}
	if c.RetryMax <= 0 {
		c.RetryMax = defaultRetryMax
	}
	return c
}

// ReaderConfig — настройки kafka.Reader: ручной коммит, старт с first или last.
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	start := kafka.LastOffset
	if strings.EqualFold(strings.TrimSpace(c.StartOffset), "first") {
		start = kafka.FirstOffset
	}
	return kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		StartOffset:    start,
		MaxWait:        readerMaxWait,
		CommitInterval: 0,
	}
}
