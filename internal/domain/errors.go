package domain

import "errors"

// ErrNotFound — запись не найдена в хранилище.
var ErrNotFound = errors.New("not found")

// ErrConflict — нарушение уникальности (например, slug категории).
var ErrConflict = errors.New("conflict")

// ErrStoreMisconfigured — хранилище каталога не сконфигурировано (нет DSN/учётных данных).
var ErrStoreMisconfigured = errors.New("catalog store is not configured")

// ErrInvalidEvent — сообщение шины не разбирается как событие; повторять бессмысленно.
var ErrInvalidEvent = errors.New("invalid event")
