package locations

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Restock-api/internal/application/dto"
	"github.com/jhoicas/Restock-api/internal/domain"
	"github.com/jhoicas/Restock-api/internal/domain/entity"
	"github.com/jhoicas/Restock-api/internal/domain/repository"
)

// UseCase casos de uso CRUD para sedes, enriquecidos con agregados de inventario.
type UseCase struct {
	repo repository.LocationRepository
}

// NewUseCase construye el caso de uso de sedes.
func NewUseCase(repo repository.LocationRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create crea una nueva sede (status por defecto: active).
func (uc *UseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.LocationStatusActive
	}
	if status != entity.LocationStatusActive && status != entity.LocationStatusInactive && status != entity.LocationStatusMaintenance {
		return nil, domain.ErrInvalidInput
	}
	if in.StaffCount < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	location := &entity.Location{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Address:    in.Address,
		City:       in.City,
		Status:     status,
		StaffCount: in.StaffCount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return uc.enrich(location)
}

// GetByID obtiene una sede por ID con sus agregados.
func (uc *UseCase) GetByID(id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	return uc.enrich(location)
}

// List lista sedes con paginación, cada una con total de artículos y valor de inventario.
func (uc *UseCase) List(limit, offset int) (*dto.LocationListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		resp, err := uc.enrich(l)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.LocationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica un parche parcial sobre la sede. Devuelve domain.ErrNotFound si no existe.
func (uc *UseCase) Update(id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		location.Name = *in.Name
	}
	if in.Address != nil {
		location.Address = *in.Address
	}
	if in.City != nil {
		location.City = *in.City
	}
	if in.Status != nil {
		s := *in.Status
		if s != entity.LocationStatusActive && s != entity.LocationStatusInactive && s != entity.LocationStatusMaintenance {
			return nil, domain.ErrInvalidInput
		}
		location.Status = s
	}
	if in.StaffCount != nil {
		if *in.StaffCount < 0 {
			return nil, domain.ErrInvalidInput
		}
		location.StaffCount = *in.StaffCount
	}
	location.UpdatedAt = time.Now()
	if err := uc.repo.Update(location); err != nil {
		return nil, err
	}
	return uc.enrich(location)
}

// Delete elimina una sede; sus artículos cascadan en la BD y las alertas con ellos.
// Devuelve domain.ErrNotFound si no existe.
func (uc *UseCase) Delete(id string) error {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if location == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// Stats devuelve los agregados de inventario de la sede.
func (uc *UseCase) Stats(id string) (*dto.LocationStatsResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	stats, err := uc.repo.Stats(id)
	if err != nil {
		return nil, err
	}
	resp, err := uc.enrich(location)
	if err != nil {
		return nil, err
	}
	return &dto.LocationStatsResponse{
		Location:      *resp,
		TotalItems:    stats.TotalItems,
		TotalValue:    stats.TotalValue,
		CriticalItems: stats.CriticalItems,
		ActiveAlerts:  stats.ActiveAlerts,
		Staff:         location.StaffCount,
	}, nil
}

// enrich completa la respuesta con total de artículos y valor de inventario.
func (uc *UseCase) enrich(l *entity.Location) (*dto.LocationResponse, error) {
	stats, err := uc.repo.Stats(l.ID)
	if err != nil {
		return nil, err
	}
	return &dto.LocationResponse{
		ID:             l.ID,
		Name:           l.Name,
		Address:        l.Address,
		City:           l.City,
		Status:         l.Status,
		StaffCount:     l.StaffCount,
		TotalItems:     stats.TotalItems,
		InventoryValue: stats.TotalValue,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}, nil
}
