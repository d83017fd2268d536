package validate

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/seafood-shop/internal/catalog"
	"github.com/Gunvolt24/seafood-shop/internal/domain"
)

// Result — статистика проверки выгрузки.
type Result struct {
	Valid   int
	Invalid int
	Dropped []catalog.DroppedRow
}

// Summary — "N valid / M invalid".
func (r Result) Summary() string {
	return fmt.Sprintf("%d valid / %d invalid", r.Valid, r.Invalid)
}

// ValidateJSONLStream — читает JSONL, прогоняет каждую строку через трансформер
// и пишет нормализованный товар одной строкой JSON. Пустые строки пропускаются,
// строки с битым JSON считаются невалидными.
func ValidateJSONLStream(tr *catalog.Transformer, ir io.Reader, ow io.Writer) (Result, error) {
	var res Result

	scanner := bufio.NewScanner(ir)
	// запас на большие строки
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue
		}

		row, err := DecodeProductLine(lineBytes)
		if err != nil {
			res.Invalid++
			res.Dropped = append(res.Dropped, catalog.DroppedRow{ID: fmt.Sprintf("line %d", line), Reason: "invalid json"})
			continue
		}

		if err := writeTransformed(tr, []domain.RawProduct{row}, ow, &res); err != nil {
			return res, err
		}
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}

func writeTransformed(tr *catalog.Transformer, rows []domain.RawProduct, ow io.Writer, res *Result) error {
	out := tr.Transform(rows)
	res.Invalid += len(out.Dropped)
	res.Dropped = append(res.Dropped, out.Dropped...)

	for i := range out.Products {
		marshal, _ := json.Marshal(&out.Products[i]) // компактный JSON
		if _, err := ow.Write(marshal); err != nil {
			return fmt.Errorf("write product: %w", err)
		}
		if _, err := ow.Write([]byte("\n")); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}
		res.Valid++
	}
	return nil
}
