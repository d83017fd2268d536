package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Gunvolt24/seafood-shop/config"
	"github.com/Gunvolt24/seafood-shop/internal/catalog"
	"github.com/Gunvolt24/seafood-shop/pkg/validate"
	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
)

// CLI для сухого прогона выгрузки товаров через трансформер витрины.
func main() {
	_ = godotenv.Load(".env.local")

	inputPath := flag.StringP("in", "i", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.StringP("format", "f", "auto", "input format: auto|json|jsonl")
	quiet := flag.BoolP("quiet", "q", false, "do not print normalized products")
	strict := flag.Bool("strict", false, "exit with code 2 if any row is dropped")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	tr := catalog.NewTransformer(catalog.Options{
		StorageBaseURL:      cfg.Storage.PublicBaseURL,
		Bucket:              cfg.Storage.Bucket,
		Placeholder:         cfg.Catalog.Placeholder,
		DefaultCategoryName: cfg.Catalog.DefaultCategory,
		DefaultUnit:         cfg.Catalog.DefaultUnit,
	})

	var out io.Writer = os.Stdout
	if *quiet {
		out = io.Discard
	}

	format := validate.InputFormat(*formatStr)
	path := *inputPath
	// stdin вариант: считаем, что jsonl
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	res, err := validate.ValidateFile(tr, path, format, out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, res.Summary())
		os.Exit(1)
	}
	for _, d := range res.Dropped {
		fmt.Fprintf(os.Stderr, "dropped id=%s reason=%s\n", d.ID, d.Reason)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", res.Summary())
	if *strict && len(res.Dropped) > 0 {
		os.Exit(2)
	}
}
