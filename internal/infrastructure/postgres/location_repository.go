package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restock-api/internal/domain/entity"
	"github.com/jhoicas/Restock-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de persistencia para sedes. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una nueva sede.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `
		INSERT INTO locations (id, name, address, city, status, staff_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, location.Address, location.City,
		location.Status, location.StaffCount, location.CreatedAt, location.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una sede por ID.
func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	query := `
		SELECT id, name, address, city, status, staff_count, created_at, updated_at
		FROM locations WHERE id = $1`
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Name, &l.Address, &l.City, &l.Status, &l.StaffCount, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// List lista sedes con paginación.
func (r *LocationRepo) List(limit, offset int) ([]*entity.Location, error) {
	query := `
		SELECT id, name, address, city, status, staff_count, created_at, updated_at
		FROM locations ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.City, &l.Status, &l.StaffCount, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update actualiza una sede existente.
func (r *LocationRepo) Update(location *entity.Location) error {
	query := `
		UPDATE locations SET name = $2, address = $3, city = $4, status = $5, staff_count = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, location.Address, location.City,
		location.Status, location.StaffCount, location.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// Delete elimina una sede; la FK de items cascada y borra sus artículos,
// y las alertas de la sede cascadan por su propia FK.
func (r *LocationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}

// Stats calcula los agregados de inventario de la sede.
func (r *LocationRepo) Stats(id string) (*repository.LocationStats, error) {
	var stats repository.LocationStats
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(quantity * unit_price), 0),
		       COUNT(*) FILTER (WHERE status = 'critical')
		FROM items WHERE location_id = $1`
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&stats.TotalItems, &stats.TotalValue, &stats.CriticalItems,
	)
	if err != nil {
		return nil, fmt.Errorf("location stats: %w", err)
	}
	err = r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM alerts WHERE location_id = $1 AND resolved = false`, id,
	).Scan(&stats.ActiveAlerts)
	if err != nil {
		return nil, fmt.Errorf("location active alerts: %w", err)
	}
	return &stats, nil
}
