package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurant-pos/internal/application/dto"
	"github.com/jhoicas/restaurant-pos/internal/application/ordering"
	"github.com/jhoicas/restaurant-pos/internal/application/session"
)

// TableHandler tablero de mesas y apertura de mesa.
type TableHandler struct {
	store    *session.Store
	ordering *ordering.UseCase
}

// NewTableHandler construye el handler de mesas.
func NewTableHandler(store *session.Store, uc *ordering.UseCase) *TableHandler {
	return &TableHandler{store: store, ordering: uc}
}

// tableView mesa en la respuesta del tablero.
type tableView struct {
	ID        int    `json:"id"`
	TableNo   string `json:"table_no"`
	Status    string `json:"status"`
	Available bool   `json:"available"`
}

// dashboardView respuesta del tablero de mesas.
type dashboardView struct {
	Operator string             `json:"operator"`
	Role     string             `json:"role"`
	Tables   []tableView        `json:"tables"`
	Summary  dto.SummaryPayload `json:"summary"`
}

// Dashboard lista las mesas con su resumen. ?q= filtra por subcadena del
// número de mesa.
func (h *TableHandler) Dashboard(c *fiber.Ctx) error {
	tables, summary, err := h.ordering.Tables(c.Context())
	if err != nil {
		return c.Status(statusFromError(err)).JSON(dto.ErrorResponse{Message: displayMessage(err)})
	}

	q := strings.TrimSpace(c.Query("q"))
	views := make([]tableView, 0, len(tables))
	for _, t := range tables {
		if q != "" && !strings.Contains(t.TableNo, q) {
			continue
		}
		views = append(views, tableView{
			ID:        t.ID,
			TableNo:   t.TableNo,
			Status:    t.Status,
			Available: t.IsAvailable(),
		})
	}

	user := h.store.CurrentUser()
	out := dashboardView{
		Tables: views,
		Summary: dto.SummaryPayload{
			TotalTable:  summary.TotalTable,
			Available:   summary.Available,
			Occupied:    summary.Occupied,
			Reserved:    summary.Reserved,
			Maintenance: summary.Maintenance,
		},
	}
	if user != nil {
		out.Operator = user.Name
		out.Role = string(user.Role())
	}
	return c.JSON(out)
}

// OpenTable abre una orden sobre la mesa y redirige a su vista.
// Solo Pelayan llega aquí (RequireRole en el router).
func (h *TableHandler) OpenTable(c *fiber.Ctx) error {
	tableID, err := c.ParamsInt("id")
	if err != nil || tableID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "id de mesa inválido"})
	}

	order, err := h.ordering.OpenTable(c.Context(), tableID)
	if err != nil {
		return c.Status(statusFromError(err)).JSON(dto.ErrorResponse{Message: displayMessage(err)})
	}
	return c.Redirect(orderPath(order.ID), fiber.StatusSeeOther)
}
