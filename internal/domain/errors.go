package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrNotFound cubre tanto la ausencia real como un recurso de otra empresa:
	// ambos casos deben ser indistinguibles para el cliente.
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrTokenMissing       = errors.New("token requerido")
	ErrTokenExpired       = errors.New("token expirado")
	ErrTokenInvalid       = errors.New("token inválido")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrStoreUnavailable   = errors.New("almacenamiento no disponible")
)

// ValidationError detalla qué campo falló. errors.Is(err, ErrInvalidInput) es true.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap permite comparar contra ErrInvalidInput.
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
