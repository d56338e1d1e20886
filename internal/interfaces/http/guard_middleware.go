package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurant-pos/internal/application/dto"
	"github.com/jhoicas/restaurant-pos/internal/application/session"
	"github.com/jhoicas/restaurant-pos/internal/domain/entity"
)

// Guard middleware de protección de vistas: función pura del estado del
// session store, sin llamadas de red.
//
// Comportamiento:
//   - Rehidratación en curso → espera la señal de completitud (el análogo
//     del indicador de carga); si el request termina antes, 503.
//   - Sin sesión → 303 a /login. Redirección, no render: el navegador no
//     acumula historial de la vista protegida.
//   - Con sesión → pasa al siguiente handler.
func Guard(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		select {
		case <-store.Ready():
		case <-c.Context().Done():
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Message: "sesión aún cargando, reintente",
			})
		}

		if !store.IsAuthenticated() {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// RequireRole autoriza por rol derivado. Debe usarse DESPUÉS de Guard.
// Rol insuficiente → 303 al tablero, la vista segura por defecto para
// cualquier usuario autenticado (decisión documentada en DESIGN.md).
func RequireRole(store *session.Store, roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !store.HasRole(roles...) {
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
