package postgres

import (
	"errors"
	"fmt"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// Коды ошибок Postgres, которые переводим в доменные.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidText         = "22P02"
)

// mapErr — доменная ошибка для известных случаев, иначе обёртка с контекстом операции.
func mapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrConflict, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w: missing reference %s", op, domain.ErrConflict, pgErr.ConstraintName)
		case pgInvalidText:
			// некорректный uuid в параметре — записи с таким id быть не может
			return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// decimalArg — numeric-параметр текстом; nil даёт NULL.
func decimalArg(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}

// parseDecimal — numeric, прочитанный как ::text; NULL приходит как nil.
func parseDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// checkID — id вне формата uuid не может существовать в таблице.
func checkID(op, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}

// checkCategoryRef — ссылка на категорию должна быть uuid.
func checkCategoryRef(op string, id *string) error {
	if id == nil {
		return nil
	}
	if _, err := uuid.Parse(*id); err != nil {
		return fmt.Errorf("%s: %w: unknown category %q", op, domain.ErrConflict, *id)
	}
	return nil
}
