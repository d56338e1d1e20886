package ordering

import (
	"context"
	"fmt"

	"github.com/jhoicas/restaurant-pos/internal/application/cart"
	"github.com/jhoicas/restaurant-pos/internal/domain/entity"
	"github.com/jhoicas/restaurant-pos/pkg/logger"
)

// TableAPI operaciones de mesas y órdenes contra el backend.
type TableAPI interface {
	Tables(ctx context.Context) ([]entity.Table, entity.TableSummary, error)
	OpenTable(ctx context.Context, tableID int) (*entity.Order, error)
	Order(ctx context.Context, orderID int) (*entity.Order, error)
	OrderItems(ctx context.Context, orderID int) ([]entity.OrderItem, error)
}

// BillRenderer genera el recibo imprimible de una orden. names mapea
// menu_id a nombre de plato.
type BillRenderer interface {
	RenderBill(order *entity.Order, items []entity.OrderItem, names map[int]string) ([]byte, error)
}

// MenuAPI se usa solo para resolver nombres de plato en el recibo.
type MenuAPI interface {
	Menus(ctx context.Context) ([]entity.MenuEntry, error)
}

// UseCase flujo de órdenes de la estación: listado de mesas, apertura de
// mesa (crear orden vacía) y lectura de orden para la vista y el recibo.
type UseCase struct {
	api   TableAPI
	menus MenuAPI
	carts *cart.Registry
	bill  BillRenderer
	log   *logger.Logger
}

// NewUseCase construye el caso de uso de órdenes.
func NewUseCase(api TableAPI, menus MenuAPI, carts *cart.Registry, bill BillRenderer, log *logger.Logger) *UseCase {
	return &UseCase{api: api, menus: menus, carts: carts, bill: bill, log: log.Component("ordering")}
}

// Tables listado de mesas con su resumen por estado.
func (uc *UseCase) Tables(ctx context.Context) ([]entity.Table, entity.TableSummary, error) {
	return uc.api.Tables(ctx)
}

// OpenTable abre una orden vacía sobre la mesa y registra su carrito.
// Contrato de dos pasos: la adjunción de items ocurre después, vía el
// Submit del carrito contra /api/orders/:id/items.
func (uc *UseCase) OpenTable(ctx context.Context, tableID int) (*entity.Order, error) {
	order, err := uc.api.OpenTable(ctx, tableID)
	if err != nil {
		return nil, fmt.Errorf("abrir mesa %d: %w", tableID, err)
	}
	uc.carts.ForOrder(order.ID)
	uc.log.Info().Int("table_id", tableID).Int("order_id", order.ID).Msg("mesa abierta")
	return order, nil
}

// Order lee la orden y sus items persistidos.
func (uc *UseCase) Order(ctx context.Context, orderID int) (*entity.Order, []entity.OrderItem, error) {
	order, err := uc.api.Order(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	items, err := uc.api.OrderItems(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

// Bill arma el recibo en PDF de la orden con sus items persistidos.
func (uc *UseCase) Bill(ctx context.Context, orderID int) ([]byte, error) {
	order, items, err := uc.Order(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// Resolver nombres de plato; si el catálogo no responde, el recibo sale
	// igual con los ids de menú.
	names := make(map[int]string)
	if entries, err := uc.menus.Menus(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("catálogo no disponible para el recibo")
	} else {
		for _, e := range entries {
			names[e.ID] = e.Name
		}
	}

	pdf, err := uc.bill.RenderBill(order, items, names)
	if err != nil {
		return nil, fmt.Errorf("generar recibo de la orden %d: %w", orderID, err)
	}
	return pdf, nil
}
