//go:build integration

package testutil

import (
	"context"
	"log"
	"os"

	"github.com/Gunvolt24/seafood-shop/internal/repo/postgres"
	"github.com/pressly/goose/v3"
)

// ApplyMigrationsGoose — накатывает встроенные миграции на свежую базу контейнера.
func ApplyMigrationsGoose(dsn string) error {
	goose.SetLogger(log.New(os.Stdout, "[goose] ", 0))
	return postgres.Migrate(context.Background(), dsn, "up")
}
