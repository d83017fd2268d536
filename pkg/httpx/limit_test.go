package httpx_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gunvolt24/seafood-shop/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestLimitBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/", httpx.LimitBody(8), func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			if httpx.IsBodyTooLarge(err) {
				c.Status(http.StatusRequestEntityTooLarge)
				return
			}
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	cases := []struct {
		name string
		body string
		want int
	}{
		{"within limit", "12345678", http.StatusOK},
		{"over limit", "123456789", http.StatusRequestEntityTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body)))
			require.Equal(t, tc.want, w.Code)
		})
	}
}

func TestIsBodyTooLarge_OtherErrors(t *testing.T) {
	require.False(t, httpx.IsBodyTooLarge(io.ErrUnexpectedEOF))
	require.False(t, httpx.IsBodyTooLarge(nil))
}
