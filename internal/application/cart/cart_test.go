package cart_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurant-pos/internal/application/cart"
	"github.com/jhoicas/restaurant-pos/internal/application/dto"
	"github.com/jhoicas/restaurant-pos/internal/domain"
	"github.com/jhoicas/restaurant-pos/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func menuEntry(id int, name, price string) entity.MenuEntry {
	return entity.MenuEntry{
		ID:       id,
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Category: "Appetizers",
	}
}

// fakeOrderAPI implementa cart.OrderAPI con comportamiento configurable.
type fakeOrderAPI struct {
	mu      sync.Mutex
	calls   int
	gotItem []dto.OrderItemInput
	err     error
	block   chan struct{} // si no es nil, SubmitItems espera aquí
}

func (f *fakeOrderAPI) SubmitItems(ctx context.Context, orderID int, items []dto.OrderItemInput) (int, error) {
	f.mu.Lock()
	f.calls++
	f.gotItem = items
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	if f.err != nil {
		return 0, f.err
	}
	return orderID, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones del carrito
// ──────────────────────────────────────────────────────────────────────────────

func TestAddLineIncrementaCantidadDeEntradaExistente(t *testing.T) {
	c := cart.New(7, &fakeOrderAPI{})
	salad := menuEntry(1, "Caesar Salad", "16.98")

	id1 := c.AddLine(salad)
	id2 := c.AddLine(salad)

	assert.Equal(t, id1, id2, "repetir la misma entrada no crea línea nueva")
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestAddLineGeneraIDsLocalesUnicos(t *testing.T) {
	c := cart.New(7, &fakeOrderAPI{})

	id1 := c.AddLine(menuEntry(1, "Caesar Salad", "16.98"))
	id2 := c.AddLine(menuEntry(2, "Buffalo Wings", "14.99"))

	assert.NotEqual(t, id1, id2)
}

func TestSetQuantityCeroEliminaYEsIdempotente(t *testing.T) {
	c := cart.New(7, &fakeOrderAPI{})
	id := c.AddLine(menuEntry(1, "Caesar Salad", "16.98"))
	c.AddLine(menuEntry(2, "Buffalo Wings", "14.99"))

	c.SetQuantity(id, 0)
	require.Len(t, c.Lines(), 1)
	totalDespues := c.Total()

	// Segunda eliminación del mismo id: no-op, carrito idéntico.
	c.SetQuantity(id, 0)
	c.Remove(id)
	assert.Len(t, c.Lines(), 1)
	assert.True(t, totalDespues.Equal(c.Total()))
}

func TestRemoveEquivaleASetQuantityCero(t *testing.T) {
	a := cart.New(7, &fakeOrderAPI{})
	b := cart.New(7, &fakeOrderAPI{})
	entry := menuEntry(1, "Caesar Salad", "16.98")

	idA := a.AddLine(entry)
	idB := b.AddLine(entry)
	a.SetQuantity(idA, 0)
	b.Remove(idB)

	assert.Empty(t, a.Lines())
	assert.Empty(t, b.Lines())
	assert.True(t, a.Total().Equal(b.Total()))
}

func TestSetQuantitySinTopeSuperior(t *testing.T) {
	c := cart.New(7, &fakeOrderAPI{})
	id := c.AddLine(menuEntry(1, "Caesar Salad", "16.98"))

	c.SetQuantity(id, 500)

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 500, c.Lines()[0].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Total
// ──────────────────────────────────────────────────────────────────────────────

func TestTotalRecalculadoTrasCadaMutacion(t *testing.T) {
	c := cart.New(7, &fakeOrderAPI{})
	salad := menuEntry(1, "Caesar Salad", "16.98")
	wings := menuEntry(2, "Buffalo Wings", "14.99")

	assert.True(t, c.Total().IsZero())

	c.AddLine(salad)
	c.AddLine(salad)
	c.AddLine(wings)

	// 16.98*2 + 14.99*1 = 48.95 — el caso de referencia del flujo de orden.
	assert.Equal(t, "48.95", c.Total().StringFixed(2))
}

func TestTotalIndependienteDelOrdenDeAltas(t *testing.T) {
	salad := menuEntry(1, "Caesar Salad", "16.98")
	wings := menuEntry(2, "Buffalo Wings", "14.99")
	mozza := menuEntry(3, "Mozzarella Sticks", "8.99")

	a := cart.New(1, &fakeOrderAPI{})
	for _, e := range []entity.MenuEntry{salad, wings, mozza, salad} {
		a.AddLine(e)
	}
	b := cart.New(2, &fakeOrderAPI{})
	for _, e := range []entity.MenuEntry{mozza, salad, salad, wings} {
		b.AddLine(e)
	}

	assert.True(t, a.Total().Equal(b.Total()))
}

// ──────────────────────────────────────────────────────────────────────────────
// Submit
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitExitosoVaciaElCarritoYDevuelveID(t *testing.T) {
	api := &fakeOrderAPI{}
	c := cart.New(42, api)
	c.AddLine(menuEntry(1, "Caesar Salad", "16.98"))
	c.AddLine(menuEntry(1, "Caesar Salad", "16.98"))
	c.AddLine(menuEntry(2, "Buffalo Wings", "14.99"))

	orderID, err := c.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 42, orderID)
	assert.Empty(t, c.Lines(), "el carrito queda vacío tras el envío confirmado")

	// Forma de envío: menu_id, quantity, price y subtotal calculado.
	require.Len(t, api.gotItem, 2)
	assert.Equal(t, 1, api.gotItem[0].MenuID)
	assert.Equal(t, 2, api.gotItem[0].Quantity)
	assert.Equal(t, "33.96", api.gotItem[0].Subtotal.StringFixed(2))
}

func TestSubmitFallidoDejaElCarritoIntacto(t *testing.T) {
	api := &fakeOrderAPI{err: errors.New("boom")}
	c := cart.New(42, api)
	c.AddLine(menuEntry(1, "Caesar Salad", "16.98"))
	totalAntes := c.Total()

	_, err := c.Submit(context.Background())

	require.Error(t, err)
	assert.Len(t, c.Lines(), 1, "sin limpieza parcial ante fallo")
	assert.True(t, totalAntes.Equal(c.Total()))

	// El error no bloquea un reintento manual posterior.
	api.err = nil
	_, err = c.Submit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, c.Lines())
}

func TestSubmitVacioEsErrorDeValidacion(t *testing.T) {
	c := cart.New(42, &fakeOrderAPI{})

	_, err := c.Submit(context.Background())

	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestSubmitReentranteSeRechaza(t *testing.T) {
	block := make(chan struct{})
	api := &fakeOrderAPI{block: block}
	c := cart.New(42, api)
	c.AddLine(menuEntry(1, "Caesar Salad", "16.98"))

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background())
		done <- err
	}()

	// Esperar a que el primer envío esté en vuelo.
	for {
		api.mu.Lock()
		calls := api.calls
		api.mu.Unlock()
		if calls == 1 {
			break
		}
		time.Sleep(time.Millisecond)
	}

	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrSubmitInFlight, "el doble submit no duplica la orden")

	close(block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, api.calls)
}
