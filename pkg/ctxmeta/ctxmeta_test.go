package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/seafood-shop/pkg/ctxmeta"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestStringValues(t *testing.T) {
	t.Parallel()

	base := context.Background()
	ctx := ctxmeta.WithActor(ctxmeta.WithRequestID(base, "req-1"), "admin@shop.test")

	rid, ok := ctxmeta.RequestIDFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, "req-1", rid)

	actor, ok := ctxmeta.ActorFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, "admin@shop.test", actor)

	_, ok = ctxmeta.RequestIDFromContext(base)
	require.False(t, ok, "родительский контекст не меняется")
}

func TestStringValues_EmptyAndNil(t *testing.T) {
	t.Parallel()

	base := context.Background()
	require.Equal(t, base, ctxmeta.WithRequestID(base, ""))
	require.Equal(t, base, ctxmeta.WithActor(base, ""))

	var nilCtx context.Context
	require.Nil(t, ctxmeta.WithRequestID(nilCtx, "req-1"))
	_, ok := ctxmeta.ActorFromContext(nilCtx)
	require.False(t, ok)

	// пустое значение под правильным ключом считается отсутствующим
	_, ok = ctxmeta.RequestIDFromContext(context.WithValue(base, ctxmeta.KeyRequestID, ""))
	require.False(t, ok)

	type foreignKey string
	_, ok = ctxmeta.RequestIDFromContext(context.WithValue(base, foreignKey("request_id"), "x"))
	require.False(t, ok)
}

func TestTraceIDs(t *testing.T) {
	t.Parallel()

	_, ok := ctxmeta.TraceIDFromContext(context.Background())
	require.False(t, ok)
	_, ok = ctxmeta.SpanIDFromContext(context.Background())
	require.False(t, ok)

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "catalog")
	defer span.End()

	traceID, ok := ctxmeta.TraceIDFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, span.SpanContext().TraceID().String(), traceID)

	spanID, ok := ctxmeta.SpanIDFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, span.SpanContext().SpanID().String(), spanID)
}

func TestFields(t *testing.T) {
	t.Parallel()

	require.Empty(t, ctxmeta.Fields(context.Background()))

	ctx := ctxmeta.WithActor(ctxmeta.WithRequestID(context.Background(), "req-1"), "a@b.c")
	require.Equal(t, []any{"request_id", "req-1", "actor", "a@b.c"}, ctxmeta.Fields(ctx))

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(ctx, "op")
	defer span.End()
	f := ctxmeta.Fields(ctx)
	require.Len(t, f, 8)
	require.Equal(t, "trace_id", f[2])
	require.Equal(t, "span_id", f[4])
}
