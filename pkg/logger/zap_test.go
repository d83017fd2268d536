package logger_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/seafood-shop/pkg/ctxmeta"
	"github.com/Gunvolt24/seafood-shop/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_ContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := logger.FromZap(zap.New(core))

	ctx := ctxmeta.WithActor(ctxmeta.WithRequestID(context.Background(), "req-7"), "admin@shop.test")
	l.Infof(ctx, "catalog fetched rows=%d", 3)
	l.Warnf(context.Background(), "plain")

	entries := logs.All()
	require.Len(t, entries, 2)

	require.Equal(t, "catalog fetched rows=3", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "req-7", fields["request_id"])
	require.Equal(t, "admin@shop.test", fields["actor"])

	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
	require.Empty(t, entries[1].ContextMap())
}

func TestNewZapLogger(t *testing.T) {
	l, sync, err := logger.NewZapLogger(true)
	require.NoError(t, err)
	require.NotNil(t, l.Base())
	l.Errorf(context.Background(), "boom %s", "x")
	_ = sync()
}
