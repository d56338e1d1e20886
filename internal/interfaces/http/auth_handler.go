package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurant-pos/internal/application/dto"
	"github.com/jhoicas/restaurant-pos/internal/application/session"
	"github.com/jhoicas/restaurant-pos/internal/domain"
)

// AuthHandler login y logout de la estación.
type AuthHandler struct {
	store *session.Store
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(store *session.Store) *AuthHandler {
	return &AuthHandler{store: store}
}

// loginForm formulario mínimo; el estilo visual queda fuera de alcance.
const loginForm = `<!doctype html>
<html><head><title>Restaurant POS</title></head><body>
<h1>Restaurant POS</h1>
<form method="post" action="/login">
  <label>Email <input type="email" name="email" required></label>
  <label>Password <input type="password" name="password" required></label>
  <button type="submit">Login</button>
</form>
</body></html>`

// LoginPage sirve el formulario de login.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if h.store.IsAuthenticated() {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(loginForm)
}

// Login autentica al operador de la estación. Acepta formulario o JSON.
// Los fallos se distinguen por clase: credenciales inválidas, validación,
// backend inalcanzable; el mensaje llega del backend sin modificar.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "email y password son requeridos"})
	}

	if err := h.store.Login(c.Context(), in.Email, in.Password); err != nil {
		return c.Status(loginErrorStatus(err)).JSON(dto.ErrorResponse{Message: displayMessage(err)})
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Logout cierra la sesión y vuelve al login. Idempotente.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.store.Logout()
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// loginErrorStatus mapea la clase de fallo de login a estado HTTP.
func loginErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrBackendUnreachable):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
