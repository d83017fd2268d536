package app

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type quietLogger struct{ warned bool }

func (l *quietLogger) Infof(context.Context, string, ...any)  {}
func (l *quietLogger) Warnf(context.Context, string, ...any)  { l.warned = true }
func (l *quietLogger) Errorf(context.Context, string, ...any) {}

func TestJWTSecret(t *testing.T) {
	log := &quietLogger{}
	s, err := jwtSecret(context.Background(), "fixed", log)
	require.NoError(t, err)
	require.Equal(t, "fixed", s)
	require.False(t, log.warned)

	a, err := jwtSecret(context.Background(), "", log)
	require.NoError(t, err)
	b, err := jwtSecret(context.Background(), "", log)
	require.NoError(t, err)
	require.Len(t, a, 64)
	require.NotEqual(t, a, b)
	require.True(t, log.warned)
}

func TestInstanceGroupID_UniquePerInstance(t *testing.T) {
	a := instanceGroupID("catalog-cache")
	b := instanceGroupID("catalog-cache")
	require.True(t, strings.HasPrefix(a, "catalog-cache-"))
	require.NotEqual(t, a, b)
}

func TestUploadsPath(t *testing.T) {
	require.Equal(t, "/uploads", uploadsPath("/uploads/"))
	require.Equal(t, "", uploadsPath("https://cdn.example.com"))
}
