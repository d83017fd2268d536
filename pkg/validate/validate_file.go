package validate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/seafood-shop/internal/catalog"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// ValidateFile — проверяет выгрузку товаров (JSON или JSONL) тем же трансформером,
// что и витрина, и пишет нормализованные товары в writer.
func ValidateFile(tr *catalog.Transformer, filePath string, format InputFormat, ow io.Writer) (Result, error) {
	// auto по расширению
	if format == FormatAuto {
		switch strings.ToLower(filepath.Ext(filePath)) {
		case ".jsonl", ".ndjson":
			format = FormatJSONL
		default:
			// по умолчанию считаем JSON
			format = FormatJSON
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return Result{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(file)
		if err != nil {
			return Result{}, fmt.Errorf("read file: %w", err)
		}
		rows, err := DecodeProductsJSON(raw)
		if err != nil {
			return Result{}, err
		}
		var res Result
		if err := writeTransformed(tr, rows, ow, &res); err != nil {
			return res, err
		}
		return res, nil

	case FormatJSONL:
		return ValidateJSONLStream(tr, file, ow)

	default:
		return Result{}, fmt.Errorf("unsupported format: %s", format)
	}
}
