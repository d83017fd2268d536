// Пакет ctxmeta — метаданные запроса в context.Context (request_id, администратор, trace/span из OTEL).
// HTTP-слой кладёт, логгер и сервисы читают; друг от друга они не зависят.
package ctxmeta

import "context"

type ctxKey string

const (
	KeyRequestID ctxKey = "request_id"
	KeyActor     ctxKey = "actor"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withString(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyRequestID)
}

// WithActor — email администратора, от имени которого идёт запрос.
func WithActor(ctx context.Context, actor string) context.Context {
	return withString(ctx, KeyActor, actor)
}

func ActorFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyActor)
}

// Fields — пары ключ/значение для структурного логгера; пустые значения пропускаются.
func Fields(ctx context.Context) []any {
	var out []any
	if v, ok := RequestIDFromContext(ctx); ok {
		out = append(out, string(KeyRequestID), v)
	}
	if v, ok := TraceIDFromContext(ctx); ok {
		out = append(out, "trace_id", v)
	}
	if v, ok := SpanIDFromContext(ctx); ok {
		out = append(out, "span_id", v)
	}
	if v, ok := ActorFromContext(ctx); ok {
		out = append(out, string(KeyActor), v)
	}
	return out
}

func withString(ctx context.Context, key ctxKey, v string) context.Context {
	if ctx == nil || v == "" {
		return ctx
	}
	return context.WithValue(ctx, key, v)
}

func stringFrom(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
