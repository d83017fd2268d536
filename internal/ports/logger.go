package ports

import "context"

// Logger — логгер сервисов и транспорта. Поля запроса (request_id, trace_id, actor)
// реализация достаёт из ctx сама, поэтому вызывающий передаёт только сообщение.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
