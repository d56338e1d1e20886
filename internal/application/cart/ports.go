package cart

import (
	"context"

	"github.com/jhoicas/restaurant-pos/internal/application/dto"
)

// OrderAPI contrato mínimo para enviar las líneas del carrito a cocina.
// Lo implementa el cliente de infrastructure/backend. Devuelve el id de la
// orden confirmado por el backend.
type OrderAPI interface {
	SubmitItems(ctx context.Context, orderID int, items []dto.OrderItemInput) (int, error)
}
