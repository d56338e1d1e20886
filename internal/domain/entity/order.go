package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order orden abierta sobre una mesa. Es propiedad del backend: el cliente
// la crea (abrir mesa) y le adjunta items, pero nunca muta estado ni fechas.
type Order struct {
	ID         int
	TableID    int
	Status     string
	TotalPrice decimal.Decimal
	OpenedAt   time.Time
	ClosedAt   time.Time
}

// OrderItem item ya persistido de una orden, leído del backend.
// No confundir con la línea local del carrito previa al envío.
type OrderItem struct {
	ID       int
	OrderID  int
	MenuID   int
	Quantity int
	Price    decimal.Decimal
	Subtotal decimal.Decimal
}
