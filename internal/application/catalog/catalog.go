package catalog

import (
	"context"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/restaurant-pos/internal/domain/entity"
)

// MenuAPI contrato mínimo contra el listado de menús del backend.
type MenuAPI interface {
	Menus(ctx context.Context) ([]entity.MenuEntry, error)
}

// Service catálogo de menú: datos de referencia de solo lectura, obtenidos
// por sesión de orden y sin caché. Filtrar nunca muta el carrito.
type Service struct {
	api MenuAPI
}

// NewService construye el servicio de catálogo.
func NewService(api MenuAPI) *Service {
	return &Service{api: api}
}

// Fetch obtiene el catálogo completo del backend.
func (s *Service) Fetch(ctx context.Context) ([]entity.MenuEntry, error) {
	return s.api.Menus(ctx)
}

// folder normaliza para comparación sin distinción de mayúsculas.
// Case folding Unicode, no un simple ToLower ASCII.
var folder = cases.Fold()

// Filter proyección pura sobre las entradas: igualdad de categoría (vacía =
// todas) y subcadena del nombre sin distinguir mayúsculas (vacía = todas).
func Filter(entries []entity.MenuEntry, category, query string) []entity.MenuEntry {
	q := folder.String(strings.TrimSpace(query))
	out := make([]entity.MenuEntry, 0, len(entries))
	for _, e := range entries {
		if category != "" && e.Category != category {
			continue
		}
		if q != "" && !strings.Contains(folder.String(e.Name), q) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Categories devuelve las categorías presentes, en orden de aparición.
func Categories(entries []entity.MenuEntry) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range entries {
		if e.Category == "" || seen[e.Category] {
			continue
		}
		seen[e.Category] = true
		out = append(out, e.Category)
	}
	return out
}

// FindByID busca una entrada por id de menú; nil si no está en el catálogo.
func FindByID(entries []entity.MenuEntry, menuID int) *entity.MenuEntry {
	for i := range entries {
		if entries[i].ID == menuID {
			return &entries[i]
		}
	}
	return nil
}
