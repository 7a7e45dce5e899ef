package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Restock-api/internal/application/dto"
	"github.com/jhoicas/Restock-api/internal/domain"
	"github.com/jhoicas/Restock-api/internal/domain/alerting"
	"github.com/jhoicas/Restock-api/internal/domain/entity"
	"github.com/jhoicas/Restock-api/internal/domain/repository"
)

// Horizonte por defecto de la consulta de artículos por vencer.
const DefaultExpiringDays = 7

// UseCase orquesta las mutaciones de artículos: persiste el artículo, evalúa el
// motor de reglas y sincroniza las alertas derivadas, todo en una transacción.
type UseCase struct {
	itemRepo repository.ItemRepository
	tx       TxRunner
}

// NewUseCase construye el caso de uso de inventario.
func NewUseCase(itemRepo repository.ItemRepository, tx TxRunner) *UseCase {
	return &UseCase{itemRepo: itemRepo, tx: tx}
}

// Create crea un artículo y persiste las alertas que su estado inicial dispare.
// Devuelve domain.ErrDuplicate si el SKU ya existe.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Quantity < 0 || in.ReorderLevel < 0 || in.ReorderQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.ItemStatusGood
	}
	if !entity.ValidItemStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	category := in.Category
	if category == "" {
		category = "general"
	}
	existing, err := uc.itemRepo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	item := &entity.Item{
		ID:              uuid.New().String(),
		Name:            in.Name,
		SKU:             in.SKU,
		Description:     in.Description,
		Quantity:        in.Quantity,
		ReorderLevel:    in.ReorderLevel,
		ReorderQuantity: in.ReorderQuantity,
		UnitPrice:       in.UnitPrice,
		Unit:            in.Unit,
		Supplier:        in.Supplier,
		ExpiryDate:      in.ExpiryDate,
		Status:          status,
		Category:        category,
		LocationID:      in.LocationID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = uc.tx.Run(ctx, func(items repository.ItemRepository, alerts repository.AlertRepository) error {
		if err := items.Create(item); err != nil {
			return err
		}
		return syncAlerts(alerts, item)
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update aplica un parche parcial sobre el artículo y reevalúa las reglas.
// Devuelve domain.ErrNotFound si el id no existe.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}
	if in.ReorderLevel != nil {
		if *in.ReorderLevel < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.ReorderLevel = *in.ReorderLevel
	}
	if in.ReorderQuantity != nil {
		if *in.ReorderQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.ReorderQuantity = *in.ReorderQuantity
	}
	if in.UnitPrice != nil {
		item.UnitPrice = *in.UnitPrice
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.Supplier != nil {
		item.Supplier = *in.Supplier
	}
	if in.ExpiryDate != nil {
		item.ExpiryDate = *in.ExpiryDate
	}
	if in.Status != nil {
		if !entity.ValidItemStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		item.Status = *in.Status
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.LocationID != nil {
		item.LocationID = *in.LocationID
	}
	item.UpdatedAt = time.Now()

	err = uc.tx.Run(ctx, func(items repository.ItemRepository, alerts repository.AlertRepository) error {
		if err := items.Update(item); err != nil {
			return err
		}
		return syncAlerts(alerts, item)
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina el artículo y todas sus alertas asociadas (por item_id) en una
// sola transacción. Devuelve domain.ErrNotFound si el id no existe.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(items repository.ItemRepository, alerts repository.AlertRepository) error {
		if err := alerts.DeleteByItem(item.ID); err != nil {
			return err
		}
		return items.Delete(item.ID)
	})
}

// GetByID obtiene un artículo por ID.
func (uc *UseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// List lista artículos, opcionalmente filtrados por sede, con paginación.
func (uc *UseCase) List(locationID string, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.itemRepo.List(locationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListLowStock lista artículos con cantidad en o bajo el punto de reorden,
// o con status critical fijado manualmente (el OR es intencional).
func (uc *UseCase) ListLowStock(locationID string) ([]dto.ItemResponse, error) {
	list, err := uc.itemRepo.ListLowStock(locationID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return items, nil
}

// ListExpiring lista artículos cuyo vencimiento cae en [ahora, ahora+days].
func (uc *UseCase) ListExpiring(locationID string, days int) ([]dto.ItemResponse, error) {
	if days <= 0 {
		days = DefaultExpiringDays
	}
	list, err := uc.itemRepo.ListExpiring(locationID, days)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return items, nil
}

// syncAlerts evalúa el motor de reglas sobre la instantánea del artículo y
// persiste los borradores. Guardia de deduplicación: si ya hay una alerta activa
// del mismo tipo para el mismo artículo, se refresca su mensaje y severidad en
// lugar de insertar un duplicado.
func syncAlerts(alerts repository.AlertRepository, item *entity.Item) error {
	for _, d := range alerting.Evaluate(item, time.Now()) {
		existing, err := alerts.FindUnresolvedByItemAndType(item.ID, d.Type)
		if err != nil {
			return err
		}
		if existing != nil {
			existing.Title = d.Title
			existing.Message = d.Message
			existing.Severity = d.Severity
			if err := alerts.Update(existing); err != nil {
				return err
			}
			continue
		}
		alert := &entity.Alert{
			ID:         uuid.New().String(),
			Title:      d.Title,
			Message:    d.Message,
			Type:       d.Type,
			Severity:   d.Severity,
			ItemID:     item.ID,
			LocationID: item.LocationID,
			CreatedAt:  time.Now(),
		}
		if err := alerts.Create(alert); err != nil {
			return err
		}
	}
	return nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:              it.ID,
		Name:            it.Name,
		SKU:             it.SKU,
		Description:     it.Description,
		Quantity:        it.Quantity,
		ReorderLevel:    it.ReorderLevel,
		ReorderQuantity: it.ReorderQuantity,
		UnitPrice:       it.UnitPrice,
		Unit:            it.Unit,
		Supplier:        it.Supplier,
		ExpiryDate:      it.ExpiryDate,
		Status:          it.Status,
		Category:        it.Category,
		LocationID:      it.LocationID,
		CreatedAt:       it.CreatedAt,
		UpdatedAt:       it.UpdatedAt,
	}
}
