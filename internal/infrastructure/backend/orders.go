package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jhoicas/restaurant-pos/internal/application/dto"
	"github.com/jhoicas/restaurant-pos/internal/domain"
	"github.com/jhoicas/restaurant-pos/internal/domain/entity"
)

// Contrato de órdenes, decidido y documentado (ver DESIGN.md): dos pasos.
// POST /api/orders {table_id} abre la orden vacía sobre la mesa;
// POST /api/orders/:id/items {items} adjunta las líneas del carrito.

// OpenTable abre una orden vacía sobre la mesa.
func (c *Client) OpenTable(ctx context.Context, tableID int) (*entity.Order, error) {
	var raw json.RawMessage
	err := c.do(ctx, http.MethodPost, "/api/orders", dto.OpenTableRequest{TableID: tableID}, &raw)
	if err != nil {
		return nil, err
	}
	return decodeOrder(raw)
}

// Order lee GET /api/orders/:id.
func (c *Client) Order(ctx context.Context, orderID int) (*entity.Order, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), nil, &raw); err != nil {
		return nil, err
	}
	return decodeOrder(raw)
}

// OrderItems lee GET /api/orders/:id/items. Tolera {data: [...]},
// {items: [...]} y el arreglo plano.
func (c *Client) OrderItems(ctx context.Context, orderID int) ([]entity.OrderItem, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d/items", orderID), nil, &raw); err != nil {
		return nil, err
	}

	var wrapped struct {
		Data  []dto.OrderItemPayload `json:"data"`
		Items []dto.OrderItemPayload `json:"items"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		if wrapped.Data != nil {
			return dto.OrderItemsToEntities(wrapped.Data), nil
		}
		if wrapped.Items != nil {
			return dto.OrderItemsToEntities(wrapped.Items), nil
		}
	}
	var bare []dto.OrderItemPayload
	if err := json.Unmarshal(raw, &bare); err == nil {
		return dto.OrderItemsToEntities(bare), nil
	}
	return nil, fmt.Errorf("%w: GET /api/orders/%d/items", domain.ErrUnexpectedShape, orderID)
}

// SubmitItems adjunta las líneas del carrito a la orden y devuelve el id de
// orden confirmado. Si el backend no ecoa la orden en la respuesta, se
// confirma con el id ya conocido.
func (c *Client) SubmitItems(ctx context.Context, orderID int, items []dto.OrderItemInput) (int, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/orders/%d/items", orderID)
	err := c.do(ctx, http.MethodPost, path, dto.SubmitItemsRequest{Items: items}, &raw)
	if err != nil {
		return 0, err
	}

	if order, err := decodeOrder(raw); err == nil && order.ID != 0 {
		return order.ID, nil
	}
	return orderID, nil
}

// decodeOrder decodifica una orden tolerando los dos sobres documentados:
// {data: Order} (con o sin success) y la Order plana.
func decodeOrder(raw []byte) (*entity.Order, error) {
	var wrapped struct {
		Data *dto.OrderPayload `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Data != nil && wrapped.Data.ID != 0 {
		return wrapped.Data.ToEntity(), nil
	}

	var bare dto.OrderPayload
	if err := json.Unmarshal(raw, &bare); err == nil && bare.ID != 0 {
		return bare.ToEntity(), nil
	}
	return nil, fmt.Errorf("%w: orden sin id", domain.ErrUnexpectedShape)
}
