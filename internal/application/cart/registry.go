package cart

import "sync"

// Registry carritos vivos de la estación, uno por orden abierta. Se crea el
// carrito al abrir la mesa y se desecha al enviarse o al reiniciar la
// estación; las líneas nunca se persisten localmente.
type Registry struct {
	api OrderAPI

	mu    sync.Mutex
	carts map[int]*Cart
}

// NewRegistry construye el registro.
func NewRegistry(api OrderAPI) *Registry {
	return &Registry{api: api, carts: make(map[int]*Cart)}
}

// ForOrder devuelve el carrito de la orden, creándolo si no existe.
func (r *Registry) ForOrder(orderID int) *Cart {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.carts[orderID]; ok {
		return c
	}
	c := New(orderID, r.api)
	r.carts[orderID] = c
	return c
}

// Drop descarta el carrito de la orden, si existe.
func (r *Registry) Drop(orderID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, orderID)
}
