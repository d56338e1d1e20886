package dto

import "time"

// Formatos de fecha que envía el backend. Laravel serializa timestamps como
// RFC3339 con microsegundos o como datetime plano según el accessor.
var backendTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseBackendTime parsea una fecha del backend con tolerancia de formato.
// Devuelve el cero de time.Time si el campo viene vacío o ilegible; las
// fechas no participan en ninguna decisión del cliente.
func ParseBackendTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range backendTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatBackendTime serializa en RFC3339; cadena vacía para el cero.
func FormatBackendTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
