package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurant-pos/internal/application/cart"
	"github.com/jhoicas/restaurant-pos/internal/application/catalog"
	"github.com/jhoicas/restaurant-pos/internal/application/dto"
	"github.com/jhoicas/restaurant-pos/internal/application/ordering"
)

// OrderHandler vista de orden, catálogo de menú y operaciones del carrito.
type OrderHandler struct {
	ordering *ordering.UseCase
	catalog  *catalog.Service
	carts    *cart.Registry
}

// NewOrderHandler construye el handler de órdenes.
func NewOrderHandler(uc *ordering.UseCase, cat *catalog.Service, carts *cart.Registry) *OrderHandler {
	return &OrderHandler{ordering: uc, catalog: cat, carts: carts}
}

func orderPath(orderID int) string {
	return fmt.Sprintf("/orders/%d", orderID)
}

// lineView línea del carrito en las respuestas.
type lineView struct {
	ID       string          `json:"id"`
	MenuID   int             `json:"menu_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Notes    string          `json:"notes,omitempty"`
}

// cartView carrito con su total recalculado.
type cartView struct {
	OrderID int             `json:"order_id"`
	Lines   []lineView      `json:"lines"`
	Total   decimal.Decimal `json:"total"`
}

func viewOf(c *cart.Cart) cartView {
	lines := c.Lines()
	views := make([]lineView, 0, len(lines))
	for _, l := range lines {
		views = append(views, lineView{
			ID:       l.ID,
			MenuID:   l.Menu.ID,
			Name:     l.Menu.Name,
			Price:    l.Menu.Price,
			Quantity: l.Quantity,
			Subtotal: l.Subtotal(),
			Notes:    l.Notes,
		})
	}
	return cartView{OrderID: c.OrderID(), Lines: views, Total: c.Total()}
}

func (h *OrderHandler) orderID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id de orden inválido")
	}
	return id, nil
}

// Show vista de la orden: datos del backend, items ya enviados y carrito local.
func (h *OrderHandler) Show(c *fiber.Ctx) error {
	id, err := h.orderID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	order, items, err := h.ordering.Order(c.Context(), id)
	if err != nil {
		return c.Status(statusFromError(err)).JSON(dto.ErrorResponse{Message: displayMessage(err)})
	}

	return c.JSON(fiber.Map{
		"order": fiber.Map{
			"id":          order.ID,
			"table_id":    order.TableID,
			"status":      order.Status,
			"total_price": order.TotalPrice,
			"opened_at":   dto.FormatBackendTime(order.OpenedAt),
		},
		"sent_items": items,
		"cart":       viewOf(h.carts.ForOrder(id)),
	})
}

// Menu catálogo filtrado para la vista de orden: ?category= y ?q=
// (subcadena del nombre, sin distinguir mayúsculas).
func (h *OrderHandler) Menu(c *fiber.Ctx) error {
	if _, err := h.orderID(c); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	entries, err := h.catalog.Fetch(c.Context())
	if err != nil {
		return c.Status(statusFromError(err)).JSON(dto.ErrorResponse{Message: displayMessage(err)})
	}

	filtered := catalog.Filter(entries, c.Query("category"), c.Query("q"))
	return c.JSON(fiber.Map{
		"categories": catalog.Categories(entries),
		"menus":      filtered,
	})
}

// addLineRequest cuerpo de POST /orders/:id/lines.
type addLineRequest struct {
	MenuID int `json:"menu_id"`
}

// AddLine agrega una entrada del menú al carrito: línea nueva con cantidad 1
// o +1 sobre la línea existente de esa entrada.
func (h *OrderHandler) AddLine(c *fiber.Ctx) error {
	id, err := h.orderID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	var in addLineRequest
	if err := c.BodyParser(&in); err != nil || in.MenuID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "menu_id es requerido"})
	}

	entries, err := h.catalog.Fetch(c.Context())
	if err != nil {
		return c.Status(statusFromError(err)).JSON(dto.ErrorResponse{Message: displayMessage(err)})
	}
	entry := catalog.FindByID(entries, in.MenuID)
	if entry == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "entrada de menú no encontrada"})
	}

	crt := h.carts.ForOrder(id)
	crt.AddLine(*entry)
	return c.JSON(viewOf(crt))
}

// setQuantityRequest cuerpo de PATCH /orders/:id/lines/:lineID.
type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetQuantity fija la cantidad de una línea; cero o negativo la elimina.
func (h *OrderHandler) SetQuantity(c *fiber.Ctx) error {
	id, err := h.orderID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	var in setQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "cuerpo inválido"})
	}

	crt := h.carts.ForOrder(id)
	crt.SetQuantity(c.Params("lineID"), in.Quantity)
	return c.JSON(viewOf(crt))
}

// RemoveLine elimina una línea del carrito. Idempotente.
func (h *OrderHandler) RemoveLine(c *fiber.Ctx) error {
	id, err := h.orderID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	crt := h.carts.ForOrder(id)
	crt.Remove(c.Params("lineID"))
	return c.JSON(viewOf(crt))
}

// Submit envía el carrito a cocina. Sin envío parcial: o el backend confirma
// y el carrito queda vacío, o el carrito queda intacto y el error se muestra.
func (h *OrderHandler) Submit(c *fiber.Ctx) error {
	id, err := h.orderID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	orderID, err := h.carts.ForOrder(id).Submit(c.Context())
	if err != nil {
		return c.Status(statusFromError(err)).JSON(dto.ErrorResponse{Message: displayMessage(err)})
	}
	return c.JSON(fiber.Map{"order_id": orderID})
}

// Bill sirve la cuenta de la orden en PDF. Solo Kasir llega aquí
// (RequireRole en el router).
func (h *OrderHandler) Bill(c *fiber.Ctx) error {
	id, err := h.orderID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	pdf, err := h.ordering.Bill(c.Context(), id)
	if err != nil {
		return c.Status(statusFromError(err)).JSON(dto.ErrorResponse{Message: displayMessage(err)})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="orden-%d.pdf"`, id))
	return c.Send(pdf)
}
