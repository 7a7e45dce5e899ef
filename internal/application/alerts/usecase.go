package alerts

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Restock-api/internal/application/dto"
	"github.com/jhoicas/Restock-api/internal/domain"
	"github.com/jhoicas/Restock-api/internal/domain/entity"
	"github.com/jhoicas/Restock-api/internal/domain/repository"
)

// UseCase ciclo de vida de alertas: creación administrativa, consulta,
// resolución (terminal) y borrado.
type UseCase struct {
	repo repository.AlertRepository
}

// NewUseCase construye el caso de uso de alertas.
func NewUseCase(repo repository.AlertRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create crea una alerta administrativa (no derivada del motor de reglas).
// Severity por defecto es info; valores fuera del conjunto cerrado se rechazan.
func (uc *UseCase) Create(in dto.CreateAlertRequest) (*dto.AlertResponse, error) {
	severity := in.Severity
	if severity == "" {
		severity = entity.SeverityInfo
	}
	if !entity.ValidSeverity(severity) {
		return nil, domain.ErrInvalidInput
	}
	alert := &entity.Alert{
		ID:         uuid.New().String(),
		Title:      in.Title,
		Message:    in.Message,
		Type:       in.Type,
		Severity:   severity,
		ItemID:     in.ItemID,
		LocationID: in.LocationID,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(alert); err != nil {
		return nil, err
	}
	return toAlertResponse(alert), nil
}

// GetByID obtiene una alerta por ID.
func (uc *UseCase) GetByID(id string) (*dto.AlertResponse, error) {
	alert, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, nil
	}
	return toAlertResponse(alert), nil
}

// ListUnresolved lista alertas activas (resolved=false) ordenadas por creación
// descendente, con filtros opcionales por sede y severidad.
func (uc *UseCase) ListUnresolved(locationID, severity string, limit, offset int) (*dto.AlertListResponse, error) {
	if severity != "" && !entity.ValidSeverity(severity) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListUnresolved(locationID, severity, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AlertResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAlertResponse(a))
	}
	return &dto.AlertListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Resolve marca la alerta como resuelta (estado terminal) y estampa ResolvedAt.
// Resolver una alerta ya resuelta es idempotente: se devuelve sin cambios y
// conserva su ResolvedAt original.
func (uc *UseCase) Resolve(id string) (*dto.AlertResponse, error) {
	alert, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrNotFound
	}
	if alert.Resolved {
		return toAlertResponse(alert), nil
	}
	now := time.Now()
	alert.Resolved = true
	alert.ResolvedAt = &now
	if err := uc.repo.Update(alert); err != nil {
		return nil, err
	}
	return toAlertResponse(alert), nil
}

// Remove elimina una alerta por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *UseCase) Remove(id string) error {
	alert, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if alert == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toAlertResponse(a *entity.Alert) *dto.AlertResponse {
	if a == nil {
		return nil
	}
	return &dto.AlertResponse{
		ID:         a.ID,
		Title:      a.Title,
		Message:    a.Message,
		Type:       a.Type,
		Severity:   a.Severity,
		Resolved:   a.Resolved,
		ItemID:     a.ItemID,
		LocationID: a.LocationID,
		CreatedAt:  a.CreatedAt,
		ResolvedAt: a.ResolvedAt,
	}
}
