package catalog

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// PGRepo implements Repo using the catalog_items table.
type PGRepo struct {
	DB *sql.DB
}

const selectItemColumns = `
SELECT id, name, category, color, array_to_string(sizes, ','), price_cents, currency, description, image_url, in_stock
FROM catalog_items`

// All returns every item ordered by id.
func (r *PGRepo) All(ctx context.Context) ([]Item, error) {
	rows, err := r.DB.QueryContext(ctx, selectItemColumns+`
ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Item, 0, 32)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns a single item.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Item, error) {
	row := r.DB.QueryRowContext(ctx, selectItemColumns+`
WHERE id = $1`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Item{}, ErrNotFound
		}
		return Item{}, err
	}
	return item, nil
}

// Upsert writes items into catalog_items, replacing rows with matching ids.
func (r *PGRepo) Upsert(ctx context.Context, items []Item) error {
	const query = `
INSERT INTO catalog_items (id, name, category, color, sizes, price_cents, currency, description, image_url, in_stock)
VALUES ($1, $2, $3, $4, string_to_array($5, ','), $6, $7, $8, $9, $10)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    category = EXCLUDED.category,
    color = EXCLUDED.color,
    sizes = EXCLUDED.sizes,
    price_cents = EXCLUDED.price_cents,
    currency = EXCLUDED.currency,
    description = EXCLUDED.description,
    image_url = EXCLUDED.image_url,
    in_stock = EXCLUDED.in_stock`

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, item := range items {
		if _, err := tx.ExecContext(ctx, query,
			item.ID,
			item.Name,
			item.Category,
			item.Color,
			strings.Join(item.Sizes, ","),
			item.PriceCents,
			item.Currency,
			item.Description,
			item.ImageURL,
			item.InStock,
		); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (Item, error) {
	var item Item
	var sizes string
	if err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.Color,
		&sizes,
		&item.PriceCents,
		&item.Currency,
		&item.Description,
		&item.ImageURL,
		&item.InStock,
	); err != nil {
		return Item{}, err
	}
	item.Sizes = splitSizes(sizes)
	return item, nil
}

func splitSizes(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var _ Repo = (*PGRepo)(nil)
