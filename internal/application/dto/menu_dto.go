package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurant-pos/internal/domain/entity"
)

// MenuPayload entrada de menú en el formato del backend. El precio llega
// como texto decimal ("16.98"); shopspring/decimal acepta string o número.
type MenuPayload struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
}

// ToEntity convierte el payload a entidad de dominio.
func (p MenuPayload) ToEntity() entity.MenuEntry {
	return entity.MenuEntry{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
	}
}

// MenusToEntities convierte un listado completo.
func MenusToEntities(payloads []MenuPayload) []entity.MenuEntry {
	out := make([]entity.MenuEntry, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, p.ToEntity())
	}
	return out
}
