package repository

import "github.com/jhoicas/Restock-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
// Las lecturas devuelven (nil, nil) cuando el registro no existe;
// Create retorna domain.ErrDuplicate si el SKU ya está registrado.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetBySKU(sku string) (*entity.Item, error)
	List(locationID string, limit, offset int) ([]*entity.Item, error)
	// ListLowStock: quantity <= reorder_level O status = critical (el OR es intencional).
	ListLowStock(locationID string) ([]*entity.Item, error)
	// ListExpiring: vencimiento dentro de [ahora, ahora+days] inclusive.
	ListExpiring(locationID string, days int) ([]*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id string) error
}
