//go:build integration

package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// TopicAndGroup — уникальные топик и consumer group для одного теста.
func TopicAndGroup(base string) (topic, group string) {
	suffix := UniqSuffix()
	return base + "-" + suffix, base + "-group-" + suffix
}

// CreateTopic — создаёт топик с одной партицией через kafka.Client и ждёт,
// пока он появится в метаданных. Уже существующий топик — не ошибка.
func CreateTopic(ctx context.Context, brokers []string, topic string) error {
	if len(brokers) == 0 {
		return errors.New("no kafka brokers")
	}
	client := &kafka.Client{Addr: kafka.TCP(stripScheme(brokers)...), Timeout: 10 * time.Second}

	resp, err := client.CreateTopics(ctx, &kafka.CreateTopicsRequest{
		Topics: []kafka.TopicConfig{{Topic: topic, NumPartitions: 1, ReplicationFactor: 1}},
	})
	if err != nil {
		return fmt.Errorf("create topic %s: %w", topic, err)
	}
	if tErr := resp.Errors[topic]; tErr != nil && !errors.Is(tErr, kafka.TopicAlreadyExists) {
		return fmt.Errorf("create topic %s: %w", topic, tErr)
	}

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	for {
		meta, mErr := client.Metadata(ctx, &kafka.MetadataRequest{Topics: []string{topic}})
		if mErr == nil {
			for _, t := range meta.Topics {
				if t.Name == topic && t.Error == nil && len(t.Partitions) > 0 {
					return nil
				}
			}
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("topic %s not ready: %w", topic, ctx.Err())
		case <-ticker.C:
		}
	}
}

// stripScheme — testcontainers иногда отдаёт адреса вида PLAINTEXT://host:port.
func stripScheme(brokers []string) []string {
	out := make([]string, 0, len(brokers))
	for _, b := range brokers {
		if i := strings.Index(b, "://"); i >= 0 {
			b = b[i+3:]
		}
		out = append(out, strings.TrimSpace(b))
	}
	return out
}
