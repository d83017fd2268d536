package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gunvolt24/seafood-shop/pkg/ctxmeta"
	"github.com/Gunvolt24/seafood-shop/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// serveWithID — прогоняет запрос через RequestID и возвращает заголовок ответа и id из контекста.
func serveWithID(t *testing.T, incoming string) (header, fromCtx string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(httpx.RequestID())
	r.GET("/", func(c *gin.Context) {
		id, ok := ctxmeta.RequestIDFromContext(c.Request.Context())
		require.True(t, ok)
		fromCtx = id
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	if incoming != "" {
		req.Header.Set(httpx.RequestIDHeader, incoming)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Header().Get(httpx.RequestIDHeader), fromCtx
}

func TestRequestID_KeepsClientValue(t *testing.T) {
	header, fromCtx := serveWithID(t, "checkout-42")
	require.Equal(t, "checkout-42", header)
	require.Equal(t, header, fromCtx)
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	for name, incoming := range map[string]string{
		"missing":   "",
		"too_long":  strings.Repeat("a", 129),
		"has_space": "two words",
		"non_ascii": "заказ-1",
	} {
		t.Run(name, func(t *testing.T) {
			header, fromCtx := serveWithID(t, incoming)
			_, err := uuid.Parse(header)
			require.NoError(t, err, header)
			require.Equal(t, header, fromCtx)
		})
	}
}
