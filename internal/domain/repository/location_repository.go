package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restock-api/internal/domain/entity"
)

// LocationStats agregados de inventario de una sede.
type LocationStats struct {
	TotalItems    int
	TotalValue    decimal.Decimal // Σ cantidad × precio unitario
	CriticalItems int
	ActiveAlerts  int
}

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	List(limit, offset int) ([]*entity.Location, error)
	Update(location *entity.Location) error
	// Delete elimina la sede; los artículos cascadan por la FK y sus alertas con ellos.
	Delete(id string) error
	Stats(id string) (*LocationStats, error)
}
