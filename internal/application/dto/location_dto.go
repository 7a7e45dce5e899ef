package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLocationRequest body para POST /api/locations.
type CreateLocationRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city,omitempty"`
	Status     string `json:"status,omitempty"` // default: active
	StaffCount int    `json:"staff_count"`
}

// UpdateLocationRequest body para PATCH /api/locations/:id.
type UpdateLocationRequest struct {
	Name       *string `json:"name,omitempty"`
	Address    *string `json:"address,omitempty"`
	City       *string `json:"city,omitempty"`
	Status     *string `json:"status,omitempty"`
	StaffCount *int    `json:"staff_count,omitempty"`
}

// LocationResponse sede con agregados de inventario.
type LocationResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	City           string          `json:"city,omitempty"`
	Status         string          `json:"status"`
	StaffCount     int             `json:"staff_count"`
	TotalItems     int             `json:"total_items"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// LocationListResponse listado paginado de sedes.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// LocationStatsResponse agregados de GET /api/locations/:id/stats.
type LocationStatsResponse struct {
	Location      LocationResponse `json:"location"`
	TotalItems    int              `json:"total_items"`
	TotalValue    decimal.Decimal  `json:"total_value"`
	CriticalItems int              `json:"critical_items"`
	ActiveAlerts  int              `json:"active_alerts"`
	Staff         int              `json:"staff"`
}
