package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restock-api/internal/domain"
	"github.com/jhoicas/Restock-api/internal/domain/entity"
	"github.com/jhoicas/Restock-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, name, sku, description, quantity, reorder_level, reorder_quantity,
		unit_price, unit, supplier, expiry_date, status, category,
		COALESCE(location_id::text, ''), created_at, updated_at`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo artículo. El constraint único de SKU se traduce a domain.ErrDuplicate.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, name, sku, description, quantity, reorder_level, reorder_quantity,
			unit_price, unit, supplier, expiry_date, status, category, location_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NULLIF($14, '')::uuid, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.SKU, item.Description, item.Quantity, item.ReorderLevel,
		item.ReorderQuantity, item.UnitPrice, item.Unit, item.Supplier, item.ExpiryDate,
		item.Status, item.Category, item.LocationID, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetBySKU obtiene un artículo por SKU (único a nivel global).
func (r *ItemRepo) GetBySKU(sku string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku))
}

// List lista artículos con paginación, opcionalmente filtrados por sede.
func (r *ItemRepo) List(locationID string, limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items`
	args := []any{}
	if locationID != "" {
		query += ` WHERE location_id = $1`
		args = append(args, locationID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.scanMany(query, args...)
}

// ListLowStock lista artículos con cantidad en o bajo el punto de reorden,
// o con status critical (el OR es intencional: el status manual también cuenta).
func (r *ItemRepo) ListLowStock(locationID string) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items
		WHERE (quantity <= reorder_level OR status = 'critical')`
	args := []any{}
	if locationID != "" {
		query += ` AND location_id = $1`
		args = append(args, locationID)
	}
	query += ` ORDER BY name`
	return r.scanMany(query, args...)
}

// ListExpiring lista artículos cuyo vencimiento cae en [hoy, hoy+days] inclusive.
func (r *ItemRepo) ListExpiring(locationID string, days int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items
		WHERE expiry_date >= CURRENT_DATE AND expiry_date <= CURRENT_DATE + $1`
	args := []any{days}
	if locationID != "" {
		query += ` AND location_id = $2`
		args = append(args, locationID)
	}
	query += ` ORDER BY expiry_date`
	return r.scanMany(query, args...)
}

// Update actualiza un artículo existente (el SKU no cambia).
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, description = $3, quantity = $4, reorder_level = $5,
			reorder_quantity = $6, unit_price = $7, unit = $8, supplier = $9,
			expiry_date = $10, status = $11, category = $12,
			location_id = NULLIF($13, '')::uuid, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.Quantity, item.ReorderLevel,
		item.ReorderQuantity, item.UnitPrice, item.Unit, item.Supplier, item.ExpiryDate,
		item.Status, item.Category, item.LocationID, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un artículo por ID.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (r *ItemRepo) scanOne(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(
		&it.ID, &it.Name, &it.SKU, &it.Description, &it.Quantity, &it.ReorderLevel,
		&it.ReorderQuantity, &it.UnitPrice, &it.Unit, &it.Supplier, &it.ExpiryDate,
		&it.Status, &it.Category, &it.LocationID, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

func (r *ItemRepo) scanMany(query string, args ...any) ([]*entity.Item, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(
			&it.ID, &it.Name, &it.SKU, &it.Description, &it.Quantity, &it.ReorderLevel,
			&it.ReorderQuantity, &it.UnitPrice, &it.Unit, &it.Supplier, &it.ExpiryDate,
			&it.Status, &it.Category, &it.LocationID, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
