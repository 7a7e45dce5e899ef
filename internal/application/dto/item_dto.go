package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Description     string          `json:"description,omitempty"`
	Quantity        int             `json:"quantity"`
	ReorderLevel    int             `json:"reorder_level"`
	ReorderQuantity int             `json:"reorder_quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Unit            string          `json:"unit"`
	Supplier        string          `json:"supplier"`
	ExpiryDate      time.Time       `json:"expiry_date"`
	Status          string          `json:"status,omitempty"`
	Category        string          `json:"category,omitempty"`
	LocationID      string          `json:"location_id,omitempty"`
}

// UpdateItemRequest body para PATCH /api/items/:id (solo campos presentes).
type UpdateItemRequest struct {
	Name            *string          `json:"name,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Quantity        *int             `json:"quantity,omitempty"`
	ReorderLevel    *int             `json:"reorder_level,omitempty"`
	ReorderQuantity *int             `json:"reorder_quantity,omitempty"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	Unit            *string          `json:"unit,omitempty"`
	Supplier        *string          `json:"supplier,omitempty"`
	ExpiryDate      *time.Time       `json:"expiry_date,omitempty"`
	Status          *string          `json:"status,omitempty"`
	Category        *string          `json:"category,omitempty"`
	LocationID      *string          `json:"location_id,omitempty"`
}

// ItemResponse representación de un artículo en respuestas.
type ItemResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Description     string          `json:"description,omitempty"`
	Quantity        int             `json:"quantity"`
	ReorderLevel    int             `json:"reorder_level"`
	ReorderQuantity int             `json:"reorder_quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Unit            string          `json:"unit"`
	Supplier        string          `json:"supplier"`
	ExpiryDate      time.Time       `json:"expiry_date"`
	Status          string          `json:"status"`
	Category        string          `json:"category"`
	LocationID      string          `json:"location_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ItemListResponse listado paginado de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
