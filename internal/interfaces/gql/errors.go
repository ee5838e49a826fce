package gql

import (
	"errors"

	"github.com/jhoicas/inventory-dashboard-api/internal/domain"
)

// Códigos publicados en errors[].extensions.code.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeWrongSource       = "WRONG_SOURCE_WAREHOUSE"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeValidation        = "VALIDATION"
	CodeInternal          = "INTERNAL"
)

// codedError conserva el mensaje de dominio y añade extensions (gqlerrors.ExtendedError).
type codedError struct {
	err  error
	code string
}

func (e *codedError) Error() string { return e.err.Error() }

func (e *codedError) Unwrap() error { return e.err }

func (e *codedError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// ErrorCode clasifica un error de dominio.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return CodeNotFound
	case errors.Is(err, domain.ErrWrongSourceWarehouse):
		return CodeWrongSource
	case errors.Is(err, domain.ErrInsufficientStock):
		return CodeInsufficientStock
	case errors.Is(err, domain.ErrInvalidInput):
		return CodeValidation
	default:
		return CodeInternal
	}
}

func toGraphQLError(err error) error {
	return &codedError{err: err, code: ErrorCode(err)}
}
