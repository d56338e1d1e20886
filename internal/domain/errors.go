package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El cliente del backend los envuelve con el mensaje del servidor; los
// handlers los traducen a estado HTTP con errors.Is.
var (
	ErrUnauthenticated    = errors.New("no autenticado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrValidation         = errors.New("entrada inválida")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrBackendUnreachable = errors.New("backend no disponible")
	ErrUnexpectedShape    = errors.New("respuesta del backend con formato inesperado")
	ErrSubmitInFlight     = errors.New("envío de orden ya en curso")
	ErrEmptyCart          = errors.New("la orden no tiene items")
)
