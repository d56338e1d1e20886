package entity

// Estados de mesa reportados por el backend.
const (
	TableAvailable   = "available"
	TableOccupied    = "occupied"
	TableReserved    = "reserved"
	TableMaintenance = "maintenance"
)

// Table mesa del restaurante. Solo lectura: el estado lo administra el backend.
type Table struct {
	ID      int
	TableNo string
	Status  string
}

// IsAvailable indica si la mesa puede abrirse (crear una orden nueva).
func (t Table) IsAvailable() bool {
	return t.Status == TableAvailable
}

// TableSummary conteos por estado que acompañan al listado de mesas.
type TableSummary struct {
	TotalTable  int
	Available   int
	Occupied    int
	Reserved    int
	Maintenance int
}
