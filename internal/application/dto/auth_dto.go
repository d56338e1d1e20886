package dto

import "github.com/jhoicas/restaurant-pos/internal/domain/entity"

// LoginRequest credenciales enviadas a POST /api/login. Los tags form
// permiten parsear el mismo cuerpo desde el formulario HTML de la estación.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// LoginResponse respuesta de login del backend: mensaje, usuario y bearer token.
type LoginResponse struct {
	Message string      `json:"message"`
	User    UserPayload `json:"user"`
	Token   string      `json:"token"`
}

// ErrorResponse cuerpo de error del backend: {message, errors?}.
// errors trae detalles de validación por campo (estilo Laravel).
type ErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// UserPayload usuario en el formato del backend.
type UserPayload struct {
	ID        int    `json:"id"`
	RoleID    int    `json:"role_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToEntity convierte el payload a entidad de dominio.
func (p UserPayload) ToEntity() *entity.User {
	return &entity.User{
		ID:        p.ID,
		RoleID:    p.RoleID,
		Name:      p.Name,
		Email:     p.Email,
		CreatedAt: ParseBackendTime(p.CreatedAt),
		UpdatedAt: ParseBackendTime(p.UpdatedAt),
	}
}

// FromUser convierte una entidad a payload (persistencia de sesión).
func FromUser(u *entity.User) UserPayload {
	return UserPayload{
		ID:        u.ID,
		RoleID:    u.RoleID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: FormatBackendTime(u.CreatedAt),
		UpdatedAt: FormatBackendTime(u.UpdatedAt),
	}
}
