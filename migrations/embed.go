// Package migrations — SQL-миграции схемы, встроенные в бинарники.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
