package repository

import "github.com/jhoicas/Restock-api/internal/domain/entity"

// AlertRepository define el puerto de persistencia para Alert (DIP).
type AlertRepository interface {
	Create(alert *entity.Alert) error
	GetByID(id string) (*entity.Alert, error)
	// ListUnresolved lista alertas activas ordenadas por creación descendente,
	// con filtros opcionales (cadena vacía = sin filtro).
	ListUnresolved(locationID, severity string, limit, offset int) ([]*entity.Alert, error)
	// FindUnresolvedByItemAndType busca una alerta activa del mismo tipo para el
	// mismo artículo (guardia de deduplicación del servicio de inventario).
	FindUnresolvedByItemAndType(itemID, alertType string) (*entity.Alert, error)
	Update(alert *entity.Alert) error
	Delete(id string) error
	// DeleteByItem elimina todas las alertas asociadas al artículo (columna item_id).
	DeleteByItem(itemID string) error
}
