package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
)

// DecodeProductsJSON — массив строк товаров (или один объект) из JSON.
// Неизвестные поля запрещены: выгрузка должна совпадать со схемой.
func DecodeProductsJSON(raw []byte) ([]domain.RawProduct, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("invalid json: empty input")
	}

	var rows []ProductRow
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	if raw[0] == '[' {
		if err := dec.Decode(&rows); err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
	} else {
		var one ProductRow
		if err := dec.Decode(&one); err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
		rows = append(rows, one)
	}
	// гарантируем отсутствие данных после значения
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}

	out := make([]domain.RawProduct, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].Raw())
	}
	return out, nil
}

// DecodeProductLine — одна строка JSONL.
func DecodeProductLine(line []byte) (domain.RawProduct, error) {
	var row ProductRow
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&row); err != nil {
		return domain.RawProduct{}, fmt.Errorf("invalid json: %w", err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return domain.RawProduct{}, fmt.Errorf("invalid json: trailing data")
	}
	return row.Raw(), nil
}
