package dto

import "github.com/jhoicas/restaurant-pos/internal/domain/entity"

// TablesResponse sobre de GET /api/tables:
// {success, message, data: {all_tables, summary}}.
type TablesResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		AllTables []TablePayload `json:"all_tables"`
		Summary   SummaryPayload `json:"summary"`
	} `json:"data"`
}

// TablePayload mesa en el formato del backend.
type TablePayload struct {
	ID      int    `json:"id"`
	TableNo string `json:"table_no"`
	Status  string `json:"status"`
}

// ToEntity convierte el payload a entidad de dominio.
func (p TablePayload) ToEntity() entity.Table {
	return entity.Table{ID: p.ID, TableNo: p.TableNo, Status: p.Status}
}

// SummaryPayload conteos por estado del listado de mesas.
type SummaryPayload struct {
	TotalTable  int `json:"total_table"`
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Reserved    int `json:"reserved"`
	Maintenance int `json:"maintenance"`
}

// ToEntity convierte el payload a entidad de dominio.
func (p SummaryPayload) ToEntity() entity.TableSummary {
	return entity.TableSummary{
		TotalTable:  p.TotalTable,
		Available:   p.Available,
		Occupied:    p.Occupied,
		Reserved:    p.Reserved,
		Maintenance: p.Maintenance,
	}
}
