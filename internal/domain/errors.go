package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los mensajes viajan tal cual al cliente GraphQL; no cambiar su texto.
var (
	ErrProductNotFound      = errors.New("Product not found")
	ErrWrongSourceWarehouse = errors.New("Product not in source warehouse")
	ErrInsufficientStock    = errors.New("Insufficient stock")
	ErrInvalidInput         = errors.New("invalid input")
)

// Errores de validación de entrada; errors.Is(err, ErrInvalidInput) es true para todos.
var (
	ErrNegativeDemand   = &ValidationError{msg: "Demand must be a non-negative integer"}
	ErrNegativeQuantity = &ValidationError{msg: "Quantity must be a non-negative integer"}
)

// ValidationError error de entrada con mensaje propio, clasificado como ErrInvalidInput.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }
