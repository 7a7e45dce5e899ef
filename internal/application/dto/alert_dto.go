package dto

import "time"

// CreateAlertRequest body para POST /api/alerts (creación administrativa).
type CreateAlertRequest struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	Type       string `json:"type"`
	Severity   string `json:"severity,omitempty"` // default: info
	ItemID     string `json:"item_id,omitempty"`
	LocationID string `json:"location_id,omitempty"`
}

// AlertResponse representación de una alerta en respuestas.
type AlertResponse struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	Type       string     `json:"type"`
	Severity   string     `json:"severity"`
	Resolved   bool       `json:"resolved"`
	ItemID     string     `json:"item_id,omitempty"`
	LocationID string     `json:"location_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// AlertListResponse listado paginado de alertas activas.
type AlertListResponse struct {
	Items []AlertResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
