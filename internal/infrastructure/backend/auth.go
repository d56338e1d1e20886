package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/restaurant-pos/internal/application/dto"
	"github.com/jhoicas/restaurant-pos/internal/domain"
	"github.com/jhoicas/restaurant-pos/internal/domain/entity"
)

// Login autentica contra POST /api/login. Llamada pública: sin bearer y sin
// hook de invalidación (un 401 aquí son credenciales inválidas, no sesión
// vencida). Devuelve el usuario y el token emitido.
func (c *Client) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	var out dto.LoginResponse
	err := c.doPublic(ctx, http.MethodPost, "/api/login", dto.LoginRequest{
		Email:    email,
		Password: password,
	}, &out)
	if err != nil {
		return nil, "", err
	}

	// Respuesta 200 pero sin user o token: formato inesperado, no sesión.
	if out.Token == "" || out.User.ID == 0 {
		return nil, "", fmt.Errorf("%w: login sin user o token", domain.ErrUnexpectedShape)
	}
	return out.User.ToEntity(), out.Token, nil
}
