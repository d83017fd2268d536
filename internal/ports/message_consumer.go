package ports

import "context"

// MessageConsumer — подписчик шины событий каталога (kafka.Consumer).
// Run читает до отмены ctx или фатальной ошибки; Close освобождает соединение с брокером.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
