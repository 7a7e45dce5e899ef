package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restock-api/internal/domain/entity"
	"github.com/jhoicas/Restock-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

const alertColumns = `id, title, message, type, severity, resolved,
		COALESCE(item_id::text, ''), COALESCE(location_id::text, ''), created_at, resolved_at`

// AlertRepo implementación del puerto AlertRepository sobre PostgreSQL (usable con pool o tx).
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de persistencia para alertas. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Create persiste una nueva alerta.
func (r *AlertRepo) Create(alert *entity.Alert) error {
	query := `
		INSERT INTO alerts (id, title, message, type, severity, resolved, item_id, location_id, created_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, NULLIF($8, '')::uuid, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.Title, alert.Message, alert.Type, alert.Severity, alert.Resolved,
		alert.ItemID, alert.LocationID, alert.CreatedAt, alert.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta por ID.
func (r *AlertRepo) GetByID(id string) (*entity.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// ListUnresolved lista alertas activas ordenadas por creación descendente,
// con filtros opcionales por sede y severidad.
func (r *AlertRepo) ListUnresolved(locationID, severity string, limit, offset int) ([]*entity.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE resolved = false`
	args := []any{}
	if locationID != "" {
		args = append(args, locationID)
		query += fmt.Sprintf(` AND location_id = $%d`, len(args))
	}
	if severity != "" {
		args = append(args, severity)
		query += fmt.Sprintf(` AND severity = $%d`, len(args))
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Alert
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Message, &a.Type, &a.Severity, &a.Resolved,
			&a.ItemID, &a.LocationID, &a.CreatedAt, &a.ResolvedAt,
		); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// FindUnresolvedByItemAndType busca una alerta activa del mismo tipo para el mismo
// artículo (guardia de deduplicación). Si hay varias, la más reciente.
func (r *AlertRepo) FindUnresolvedByItemAndType(itemID, alertType string) (*entity.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts
		WHERE item_id = $1 AND type = $2 AND resolved = false
		ORDER BY created_at DESC LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, itemID, alertType))
}

// Update actualiza una alerta existente (mensaje, severidad, resolución).
func (r *AlertRepo) Update(alert *entity.Alert) error {
	query := `
		UPDATE alerts SET title = $2, message = $3, severity = $4, resolved = $5, resolved_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.Title, alert.Message, alert.Severity, alert.Resolved, alert.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("update alert: %w", err)
	}
	return nil
}

// Delete elimina una alerta por ID.
func (r *AlertRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM alerts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete alert: %w", err)
	}
	return nil
}

// DeleteByItem elimina todas las alertas asociadas a un artículo por su columna item_id.
func (r *AlertRepo) DeleteByItem(itemID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM alerts WHERE item_id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete alerts by item: %w", err)
	}
	return nil
}

func (r *AlertRepo) scanOne(row pgx.Row) (*entity.Alert, error) {
	var a entity.Alert
	err := row.Scan(
		&a.ID, &a.Title, &a.Message, &a.Type, &a.Severity, &a.Resolved,
		&a.ItemID, &a.LocationID, &a.CreatedAt, &a.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return &a, nil
}
