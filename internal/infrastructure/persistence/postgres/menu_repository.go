package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/obsidianspecter/demo-delivery/internal/domain/menu"
)

type MenuRepository struct {
	pool *pgxpool.Pool
}

func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{pool: pool}
}

func (r *MenuRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]menu.MenuItem, error) {
	const query = `
		SELECT id, name, description, price, category, tags, preparation_time, popular
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY category, name;
	`

	rows, err := r.pool.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("query menu: %w", err)
	}
	defer rows.Close()

	var items []menu.MenuItem
	for rows.Next() {
		var item menu.MenuItem
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Category,
			&item.Tags,
			&item.PreparationTime,
			&item.Popular,
		); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
