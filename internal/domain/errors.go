package domain

import (
	"errors"
	"fmt"
)

// ErrorKind clasifica los fallos del cliente remoto en una taxonomía única.
// Los llamadores nunca distinguen entre fallo de transporte y respuesta HTTP
// más allá de esta clasificación.
type ErrorKind string

const (
	KindUnauthenticated ErrorKind = "unauthenticated" // sin credencial o credencial rechazada
	KindNotFound        ErrorKind = "not_found"
	KindValidation      ErrorKind = "validation" // entrada rechazada por el servidor (4xx)
	KindServerError     ErrorKind = "server_error"
	KindNetworkError    ErrorKind = "network_error" // la petición nunca obtuvo respuesta
)

// APIError forma única de error para toda llamada al API remoto.
// Message es apto para mostrarse al usuario: cuando el envelope trae
// "message", se propaga tal cual.
type APIError struct {
	Kind    ErrorKind
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s: %s", e.Kind, e.Message)
}

// NewAPIError construye un APIError.
func NewAPIError(kind ErrorKind, message string) *APIError {
	return &APIError{Kind: kind, Message: message}
}

// ErrKind devuelve la clasificación de err, o "" si no es un APIError.
func ErrKind(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

// IsUnauthenticated indica si err es un fallo de credencial.
func IsUnauthenticated(err error) bool {
	return ErrKind(err) == KindUnauthenticated
}

// Errores de dominio (sin dependencias externas).
var (
	ErrProductMissing = errors.New("producto requerido")
	ErrUnknownAction  = errors.New("acción desconocida")
)
