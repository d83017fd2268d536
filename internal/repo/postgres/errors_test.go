package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMapErr(t *testing.T) {
	require.NoError(t, mapErr("op", nil))
	require.ErrorIs(t, mapErr("op", pgx.ErrNoRows), domain.ErrNotFound)
	require.ErrorIs(t, mapErr("op", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "categories_slug_key"}), domain.ErrConflict)
	require.ErrorIs(t, mapErr("op", fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: pgForeignKeyViolation})), domain.ErrConflict)
	require.ErrorIs(t, mapErr("op", &pgconn.PgError{Code: pgInvalidText}), domain.ErrNotFound)

	other := errors.New("boom")
	err := mapErr("select", other)
	require.ErrorIs(t, err, other)
	require.Contains(t, err.Error(), "select: boom")
}

func TestCheckID(t *testing.T) {
	require.NoError(t, checkID("op", "6f1d8f6e-2a8a-4a2b-9a53-6c1f7f0b8c11"))
	require.ErrorIs(t, checkID("op", "42"), domain.ErrNotFound)

	bad := "x"
	require.NoError(t, checkCategoryRef("op", nil))
	require.ErrorIs(t, checkCategoryRef("op", &bad), domain.ErrConflict)
}

func TestDecimalHelpers(t *testing.T) {
	require.Nil(t, decimalArg(nil))
	d := decimal.RequireFromString("12.50")
	require.Equal(t, "12.5", decimalArg(&d))

	got, err := parseDecimal(nil)
	require.NoError(t, err)
	require.Nil(t, got)

	s := "890.00"
	got, err = parseDecimal(&s)
	require.NoError(t, err)
	require.True(t, got.Equal(decimal.NewFromInt(890)))

	bad := "abc"
	_, err = parseDecimal(&bad)
	require.Error(t, err)
}

func TestCatalogRepository_NilPool(t *testing.T) {
	_, err := NewCatalogRepository(nil).ListActiveProducts(context.Background())
	require.ErrorIs(t, err, domain.ErrStoreMisconfigured)
}
