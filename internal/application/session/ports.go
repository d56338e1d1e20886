package session

import (
	"context"

	"github.com/jhoicas/restaurant-pos/internal/domain/entity"
)

// AuthAPI contrato mínimo contra el endpoint de login del backend.
// Lo implementa el cliente de infrastructure/backend.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
}

// Record registro único de sesión que se persiste en almacenamiento durable.
// Invariante: User y Token presentes ambos o ausentes ambos.
type Record struct {
	User  *entity.User
	Token string
}

// Vault almacenamiento durable de la sesión: exactamente un registro bajo
// una clave fija. Load sin registro devuelve (nil, nil); Clear es idempotente.
type Vault interface {
	Load() (*Record, error)
	Save(*Record) error
	Clear() error
}
