package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados operativos de un artículo. "critical" puede fijarse manualmente y
// hace que el artículo cuente como stock bajo aunque esté sobre el punto de reorden.
const (
	ItemStatusGood     = "good"
	ItemStatusWarning  = "warning"
	ItemStatusCritical = "critical"
)

// Item representa un artículo de inventario perecedero/reordenable atado a una sede.
// SKU es único a nivel global; Quantity y ReorderLevel son enteros no negativos.
type Item struct {
	ID              string
	Name            string
	SKU             string
	Description     string
	Quantity        int
	ReorderLevel    int
	ReorderQuantity int
	UnitPrice       decimal.Decimal
	Unit            string // kg, unidades, litros...
	Supplier        string
	ExpiryDate      time.Time // solo la fecha es significativa
	Status          string    // good | warning | critical
	Category        string
	LocationID      string // vacío = sin sede asignada
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ValidItemStatus indica si s pertenece al conjunto cerrado de estados.
func ValidItemStatus(s string) bool {
	return s == ItemStatusGood || s == ItemStatusWarning || s == ItemStatusCritical
}
