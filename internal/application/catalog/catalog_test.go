package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/restaurant-pos/internal/application/catalog"
	"github.com/jhoicas/restaurant-pos/internal/domain/entity"
)

func sampleMenu() []entity.MenuEntry {
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	return []entity.MenuEntry{
		{ID: 1, Name: "Caesar Salad", Price: price("16.98"), Category: "Appetizers"},
		{ID: 2, Name: "Buffalo Wings", Price: price("14.99"), Category: "Appetizers"},
		{ID: 3, Name: "Mozzarella Sticks", Price: price("8.99"), Category: "Appetizers"},
		{ID: 4, Name: "Tiramisú", Price: price("7.50"), Category: "Desserts"},
	}
}

func TestFilterPorCategoria(t *testing.T) {
	out := catalog.Filter(sampleMenu(), "Desserts", "")

	assert.Len(t, out, 1)
	assert.Equal(t, "Tiramisú", out[0].Name)
}

func TestFilterPorNombreSinDistinguirMayusculas(t *testing.T) {
	out := catalog.Filter(sampleMenu(), "", "BUFFALO")
	assert.Len(t, out, 1)
	assert.Equal(t, 2, out[0].ID)

	// Case folding también sobre no-ASCII.
	out = catalog.Filter(sampleMenu(), "", "tiramisú")
	assert.Len(t, out, 1)
	assert.Equal(t, 4, out[0].ID)
}

func TestFilterCombinaCategoriaYNombre(t *testing.T) {
	out := catalog.Filter(sampleMenu(), "Appetizers", "salad")

	assert.Len(t, out, 1)
	assert.Equal(t, "Caesar Salad", out[0].Name)
}

func TestFilterVacioDevuelveTodo(t *testing.T) {
	out := catalog.Filter(sampleMenu(), "", "")

	assert.Len(t, out, 4)
}

func TestFilterNoMutaElOrigen(t *testing.T) {
	entries := sampleMenu()
	_ = catalog.Filter(entries, "Appetizers", "wings")

	assert.Len(t, entries, 4, "la proyección es de solo lectura")
}

func TestCategoriesEnOrdenDeAparicion(t *testing.T) {
	got := catalog.Categories(sampleMenu())

	assert.Equal(t, []string{"Appetizers", "Desserts"}, got)
}

func TestFindByID(t *testing.T) {
	entries := sampleMenu()

	found := catalog.FindByID(entries, 2)
	assert.NotNil(t, found)
	assert.Equal(t, "Buffalo Wings", found.Name)

	assert.Nil(t, catalog.FindByID(entries, 99))
}
