package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Gunvolt24/seafood-shop/internal/auth"
	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/internal/usecase"
	"github.com/Gunvolt24/seafood-shop/pkg/validate"
	"github.com/gin-gonic/gin"
)

// Коды ошибок в теле ответа.
const (
	CodeMissingToken       = "MISSING_TOKEN"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeMissingCredentials = "MISSING_CREDENTIALS"
	CodeInvalidEmail       = "INVALID_EMAIL"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeRateLimited        = "RATE_LIMITED"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeInvalidOrder       = "INVALID_ORDER"
	CodeInvalidFile        = "INVALID_FILE"
	CodeFileTooLarge       = "FILE_TOO_LARGE"
	CodeBodyTooLarge       = "REQUEST_TOO_LARGE"
	CodeUnsupportedFile    = "UNSUPPORTED_FILE_TYPE"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeStoreMisconfigured = "STORE_MISCONFIGURED"
	CodeDatabaseError      = "DATABASE_ERROR"
	CodeTimeout            = "TIMEOUT"
	CodeInternal           = "INTERNAL_ERROR"
)

// apiError — ошибка с HTTP-статусом, кодом и сообщением, которое можно показать клиенту.
type apiError struct {
	Err     error
	Status  int
	Code    string
	Message string
}

func (e *apiError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *apiError) Unwrap() error { return e.Err }

func newAPIError(err error, status int, code, msg string) *apiError {
	return &apiError{Err: err, Status: status, Code: code, Message: msg}
}

// toAPIError — сопоставление доменных ошибок и ответов.
// Для ошибок валидации клиенту уходит текст ошибки, для остальных 5xx — общее сообщение.
func toAPIError(err error) *apiError {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae
	}

	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return newAPIError(err, http.StatusUnauthorized, CodeTokenExpired, "Token expired")
	case errors.Is(err, auth.ErrTokenInvalid):
		return newAPIError(err, http.StatusUnauthorized, CodeInvalidToken, "Invalid token")
	case errors.Is(err, usecase.ErrMissingCredentials):
		return newAPIError(err, http.StatusBadRequest, CodeMissingCredentials, "Email and password are required")
	case errors.Is(err, usecase.ErrInvalidEmail):
		return newAPIError(err, http.StatusBadRequest, CodeInvalidEmail, "Invalid email format")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return newAPIError(err, http.StatusUnauthorized, CodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, usecase.ErrRateLimited):
		return newAPIError(err, http.StatusTooManyRequests, CodeRateLimited, "Too many failed attempts")
	case errors.Is(err, usecase.ErrInvalidInput):
		return newAPIError(err, http.StatusBadRequest, CodeInvalidInput, err.Error())
	case errors.Is(err, validate.ErrInvalidOrder):
		return newAPIError(err, http.StatusBadRequest, CodeInvalidOrder, err.Error())
	case errors.Is(err, usecase.ErrUploadMissingFields), errors.Is(err, usecase.ErrUploadBadEncoding):
		return newAPIError(err, http.StatusBadRequest, CodeInvalidFile, err.Error())
	case errors.Is(err, usecase.ErrUploadTooLarge):
		return newAPIError(err, http.StatusRequestEntityTooLarge, CodeFileTooLarge, err.Error())
	case errors.Is(err, usecase.ErrUploadUnsupported):
		return newAPIError(err, http.StatusBadRequest, CodeUnsupportedFile, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return newAPIError(err, http.StatusNotFound, CodeNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		return newAPIError(err, http.StatusConflict, CodeConflict, "conflicts with existing data")
	case errors.Is(err, usecase.ErrStoreMisconfigured):
		return newAPIError(err, http.StatusInternalServerError, CodeStoreMisconfigured, "Catalog store is not configured")
	case errors.Is(err, usecase.ErrStoreQuery):
		return newAPIError(err, http.StatusInternalServerError, CodeDatabaseError, "Database query failed")
	case errors.Is(err, context.DeadlineExceeded):
		return newAPIError(err, http.StatusGatewayTimeout, CodeTimeout, "request timed out")
	default:
		return newAPIError(err, http.StatusInternalServerError, CodeInternal, "internal server error")
	}
}

// fail — единая запись ошибки: лог по уровню статуса и тело {error, code}.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	ae := toAPIError(err)
	if ae.Status >= http.StatusInternalServerError {
		h.log.Errorf(c.Request.Context(), "%s failed err=%v", op, err)
	} else {
		h.log.Warnf(c.Request.Context(), "%s rejected status=%d err=%v", op, ae.Status, err)
	}
	c.AbortWithStatusJSON(ae.Status, errorBody(ae))
}

func errorBody(ae *apiError) gin.H {
	body := gin.H{"error": ae.Message}
	if ae.Code != "" {
		body["code"] = ae.Code
	}
	return body
}
