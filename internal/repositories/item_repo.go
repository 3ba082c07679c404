package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"shelftrack/internal/models"
)

type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	List(ctx context.Context) ([]models.Item, error)
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id int64) error
}

type itemRepo struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, item *models.Item) error {
	query := `INSERT INTO items (name, location, qty) VALUES (?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query, item.Name, item.Location, item.Qty)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("read assigned id: %w", err)
	}
	item.ID = id

	return nil
}

func (r *itemRepo) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	item := &models.Item{}
	query := `SELECT id, name, location, qty FROM items WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Name, &item.Location, &item.Qty)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// List returns the full snapshot ordered by location then name, both
// ascending. Returns an empty slice, not nil, when the table is empty.
func (r *itemRepo) List(ctx context.Context) ([]models.Item, error) {
	query := `
		SELECT id, name, location, qty
		FROM items
		ORDER BY location ASC, name ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Location, &item.Qty); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	return items, nil
}

// Update overwrites the mutable fields of the matching record. A missing id
// is not an error: the statement simply affects zero rows.
func (r *itemRepo) Update(ctx context.Context, item *models.Item) error {
	query := `UPDATE items SET name = ?, location = ?, qty = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, item.Name, item.Location, item.Qty, item.ID); err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete removes the matching record. A missing id is not an error.
func (r *itemRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
