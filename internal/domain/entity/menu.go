package entity

import "github.com/shopspring/decimal"

// MenuEntry entrada del menú. Datos de referencia de solo lectura,
// obtenidos por sesión de orden. El precio llega como texto decimal
// del backend y se maneja como decimal exacto en todo el flujo.
type MenuEntry struct {
	ID          int
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
}
