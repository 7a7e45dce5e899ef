package inventory

import (
	"context"

	"github.com/jhoicas/Restock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que el guardado del artículo y la escritura de sus
// alertas derivadas sean una sola unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		alertRepo repository.AlertRepository,
	) error) error
}
