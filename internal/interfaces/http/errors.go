package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurant-pos/internal/domain"
)

// statusFromError mapea errores de dominio a estado HTTP en rutas protegidas.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrEmptyCart):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrSubmitInFlight):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrBackendUnreachable):
		return fiber.StatusBadGateway
	case errors.Is(err, domain.ErrUnexpectedShape):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// displayMessage arma el mensaje mostrable al operador. Para credenciales o
// validación se conserva el texto del backend (quitando el prefijo del
// centinela); los fallos técnicos se resumen en un mensaje reintentable.
func displayMessage(err error) string {
	if errors.Is(err, domain.ErrBackendUnreachable) {
		return "no se pudo contactar al backend, reintente"
	}
	if errors.Is(err, domain.ErrUnexpectedShape) {
		return "el backend respondió con un formato inesperado"
	}

	msg := err.Error()
	for _, sentinel := range []error{
		domain.ErrUnauthenticated,
		domain.ErrForbidden,
		domain.ErrValidation,
		domain.ErrNotFound,
	} {
		prefix := sentinel.Error() + ": "
		if strings.HasPrefix(msg, prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return msg
}
