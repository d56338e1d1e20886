package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurant-pos/internal/domain/entity"
)

// OpenTableRequest cuerpo de POST /api/orders: abre una orden vacía
// sobre la mesa. La adjunción de items es una llamada separada
// (POST /api/orders/:id/items); ver el contrato documentado en DESIGN.md.
type OpenTableRequest struct {
	TableID int `json:"table_id"`
}

// SubmitItemsRequest cuerpo de POST /api/orders/:id/items.
type SubmitItemsRequest struct {
	Items []OrderItemInput `json:"items"`
}

// OrderItemInput forma de envío de una línea del carrito. price y subtotal
// viajan como texto decimal, igual que los envía el backend.
type OrderItemInput struct {
	MenuID   int             `json:"menu_id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// OrderPayload orden en el formato del backend.
type OrderPayload struct {
	ID         int             `json:"id"`
	TableID    int             `json:"table_id"`
	Status     string          `json:"status"`
	TotalPrice decimal.Decimal `json:"total_price"`
	OpenedAt   string          `json:"opened_at"`
	ClosedAt   string          `json:"closed_at"`
}

// ToEntity convierte el payload a entidad de dominio.
func (p OrderPayload) ToEntity() *entity.Order {
	return &entity.Order{
		ID:         p.ID,
		TableID:    p.TableID,
		Status:     p.Status,
		TotalPrice: p.TotalPrice,
		OpenedAt:   ParseBackendTime(p.OpenedAt),
		ClosedAt:   ParseBackendTime(p.ClosedAt),
	}
}

// OrderItemPayload item persistido de una orden.
type OrderItemPayload struct {
	ID       int             `json:"id"`
	OrderID  int             `json:"order_id"`
	MenuID   int             `json:"menu_id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// ToEntity convierte el payload a entidad de dominio.
func (p OrderItemPayload) ToEntity() entity.OrderItem {
	return entity.OrderItem{
		ID:       p.ID,
		OrderID:  p.OrderID,
		MenuID:   p.MenuID,
		Quantity: p.Quantity,
		Price:    p.Price,
		Subtotal: p.Subtotal,
	}
}

// OrderItemsToEntities convierte un listado completo.
func OrderItemsToEntities(payloads []OrderItemPayload) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, p.ToEntity())
	}
	return out
}
