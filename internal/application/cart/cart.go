package cart

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurant-pos/internal/application/dto"
	"github.com/jhoicas/restaurant-pos/internal/domain"
	"github.com/jhoicas/restaurant-pos/internal/domain/entity"
)

// Line línea del carrito: una entrada de menú con su cantidad. El ID es
// local (uuid generado en la estación), único solo dentro de este carrito;
// al enviar la orden el backend asigna los ids definitivos.
type Line struct {
	ID       string
	Menu     entity.MenuEntry
	Quantity int
	Notes    string
}

// Subtotal precio por cantidad de esta línea.
func (l Line) Subtotal() decimal.Decimal {
	return l.Menu.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart carrito de una orden abierta: staging local de líneas antes del envío
// a cocina. Todas las mutaciones pasan por el mutex; el envío está protegido
// además por una bandera de vuelo único para impedir el doble submit.
type Cart struct {
	api     OrderAPI
	orderID int

	mu         sync.Mutex
	lines      []Line
	submitting bool
}

// New construye un carrito vacío ligado a una orden ya abierta.
func New(orderID int, api OrderAPI) *Cart {
	return &Cart{api: api, orderID: orderID}
}

// OrderID orden del backend a la que pertenece este carrito.
func (c *Cart) OrderID() int {
	return c.orderID
}

// AddLine agrega una entrada de menú: si ya hay línea para esa entrada,
// incrementa su cantidad en 1; si no, crea una línea nueva con cantidad 1.
// Devuelve el id local de la línea afectada.
func (c *Cart) AddLine(menu entity.MenuEntry) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Menu.ID == menu.ID {
			c.lines[i].Quantity++
			return c.lines[i].ID
		}
	}
	line := Line{ID: uuid.NewString(), Menu: menu, Quantity: 1}
	c.lines = append(c.lines, line)
	return line.ID
}

// SetQuantity fija la cantidad de una línea; n <= 0 la elimina. Sin tope
// superior: el backend es la autoridad sobre inventario. Un id desconocido
// es un no-op, lo que hace la eliminación idempotente.
func (c *Cart) SetQuantity(lineID string, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID != lineID {
			continue
		}
		if n <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity = n
		}
		return
	}
}

// Remove elimina una línea. Equivalente a SetQuantity(lineID, 0).
func (c *Cart) Remove(lineID string) {
	c.SetQuantity(lineID, 0)
}

// Lines devuelve una copia de las líneas en orden de inserción.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total suma precio por cantidad de todas las líneas, recalculada en cada
// llamada. Sin acumulador incremental: O(n) y trivialmente correcto para
// carritos de decenas de items.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Submit envía todas las líneas a cocina. Sin envío parcial: solo si el
// backend confirma se vacía el carrito y se devuelve el id de orden; ante
// cualquier fallo el carrito queda intacto y el error se propaga sin
// modificar (no hay reintento automático). Un segundo Submit mientras hay
// uno en vuelo se rechaza con ErrSubmitInFlight en vez de duplicar la orden.
func (c *Cart) Submit(ctx context.Context) (int, error) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return 0, domain.ErrSubmitInFlight
	}
	if len(c.lines) == 0 {
		c.mu.Unlock()
		return 0, domain.ErrEmptyCart
	}
	c.submitting = true
	items := make([]dto.OrderItemInput, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, dto.OrderItemInput{
			MenuID:   l.Menu.ID,
			Quantity: l.Quantity,
			Price:    l.Menu.Price,
			Subtotal: l.Subtotal(),
		})
	}
	c.mu.Unlock()

	orderID, err := c.api.SubmitItems(ctx, c.orderID, items)

	c.mu.Lock()
	c.submitting = false
	if err == nil {
		c.lines = nil
	}
	c.mu.Unlock()

	if err != nil {
		return 0, err
	}
	return orderID, nil
}
