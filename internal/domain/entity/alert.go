package entity

import "time"

// Severidades de alerta (conjunto cerrado). El motor de reglas solo emite
// warning y critical; info queda para alertas administrativas.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Tipos de alerta emitidos por el motor de reglas.
const (
	AlertTypeLowStock = "low_stock"
	AlertTypeExpiring = "expiring"
	AlertTypeExpired  = "expired"
)

// Alert representa una alerta operativa. ItemID asocia la alerta con su artículo
// origen de forma explícita (columna nullable, sin FK dura): el borrado del artículo
// elimina sus alertas por esta columna y el mensaje queda puramente descriptivo.
type Alert struct {
	ID         string
	Title      string
	Message    string
	Type       string // low_stock | expiring | expired | info...
	Severity   string // info | warning | critical
	Resolved   bool
	ItemID     string // vacío = alerta administrativa sin artículo origen
	LocationID string
	CreatedAt  time.Time
	ResolvedAt *time.Time // nil mientras la alerta siga activa
}

// ValidSeverity indica si s pertenece al conjunto cerrado de severidades.
func ValidSeverity(s string) bool {
	return s == SeverityInfo || s == SeverityWarning || s == SeverityCritical
}
