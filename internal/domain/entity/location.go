package entity

import "time"

// Estados de una sede.
const (
	LocationStatusActive      = "active"
	LocationStatusInactive    = "inactive"
	LocationStatusMaintenance = "maintenance"
)

// Location representa una sede física (sucursal) que posee artículos y alertas.
// El borrado de la sede cascada a sus artículos (y de ahí a sus alertas).
type Location struct {
	ID         string
	Name       string
	Address    string
	City       string
	Status     string // active | inactive | maintenance
	StaffCount int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
