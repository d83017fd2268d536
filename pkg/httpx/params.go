package httpx

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrBadPage — limit/offset в query не являются целыми числами.
var ErrBadPage = errors.New("bad page parameters")

// Page — окно выборки для списков админки.
type Page struct {
	Limit  int
	Offset int
}

// ParsePage — limit/offset из query.
// Отсутствующий параметр берёт значение по умолчанию, limit прижимается к [1, maxLimit],
// отрицательный offset считается нулём. Нечисловое значение — ErrBadPage.
func ParsePage(c *gin.Context, defaultLimit, maxLimit int) (Page, error) {
	p := Page{Limit: defaultLimit}

	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Page{}, fmt.Errorf("%w: limit=%q", ErrBadPage, raw)
		}
		p.Limit = v
	}
	if raw := strings.TrimSpace(c.Query("offset")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Page{}, fmt.Errorf("%w: offset=%q", ErrBadPage, raw)
		}
		p.Offset = max(v, 0)
	}

	p.Limit = min(max(p.Limit, 1), max(maxLimit, 1))
	return p, nil
}
