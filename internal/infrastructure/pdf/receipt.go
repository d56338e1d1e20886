// Package pdf genera la cuenta imprimible de una orden (el "Print Bill"
// de la estación): encabezado con mesa y orden, una fila por item y el
// total a pagar.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/restaurant-pos/internal/domain/entity"
)

var (
	colorInk  = &props.Color{Red: 30, Green: 30, Blue: 30}
	colorGray = &props.Color{Red: 110, Green: 110, Blue: 110}
)

// BillGenerator genera la cuenta de una orden con Maroto v2.
type BillGenerator struct {
	appName string
}

// NewBillGenerator construye el generador. appName aparece en el encabezado.
func NewBillGenerator(appName string) *BillGenerator {
	return &BillGenerator{appName: appName}
}

// RenderBill genera el PDF de la cuenta y devuelve sus bytes. names mapea
// menu_id a nombre de plato; un id sin nombre se imprime como "Menú #id".
func (g *BillGenerator) RenderBill(order *entity.Order, items []entity.OrderItem, names map[int]string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Cuenta orden %d", order.ID), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, order))
	m.AddRows(line.NewRow(2, props.Line{Color: colorInk, Thickness: 0.5}))
	m.AddRows(itemsHeaderRow())
	for _, it := range items {
		m.AddRows(itemRow(it, names))
	}
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(order, items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar cuenta: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la aplicación, número de orden, mesa y fecha.
func headerRow(appName string, order *entity.Order) core.Row {
	fecha := ""
	if !order.OpenedAt.IsZero() {
		fecha = order.OpenedAt.Format("02/01/2006 15:04")
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New(appName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorInk, Top: 1}),
			text.New(fmt.Sprintf("Mesa %d", order.TableID), props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Orden #%d", order.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New(fecha, props.Text{Size: 8, Align: align.Right, Top: 9, Color: colorGray}),
		),
	)
}

func itemsHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New("Cant", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
		col.New(5).Add(text.New("Plato", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
		col.New(2).Add(text.New("P.Unit", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1})),
		col.New(3).Add(text.New("Subtotal", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1})),
	)
}

func itemRow(it entity.OrderItem, names map[int]string) core.Row {
	name := names[it.MenuID]
	if name == "" {
		name = fmt.Sprintf("Menú #%d", it.MenuID)
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 8, Top: 1})),
		col.New(5).Add(text.New(name, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(it.Price.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(3).Add(text.New(it.Subtotal.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

// totalRow: usa el total de la orden si el backend lo calculó; si viene en
// cero, suma los subtotales leídos.
func totalRow(order *entity.Order, items []entity.OrderItem) core.Row {
	total := order.TotalPrice
	if total.IsZero() {
		for _, it := range items {
			total = total.Add(it.Subtotal)
		}
	}
	return row.New(10).Add(
		col.New(7).Add(text.New("TOTAL A PAGAR", props.Text{Style: fontstyle.Bold, Size: 11, Top: 2})),
		col.New(5).Add(text.New("$ "+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
		})),
	)
}
