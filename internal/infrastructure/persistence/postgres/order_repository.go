package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/obsidianspecter/demo-delivery/internal/domain/order"
)

// OrderRepository mirrors the in-memory store into Postgres so orders
// survive a restart when a database is configured. Pending simulator
// timers are not persisted; orders left in an intermediate status after
// a restart are accepted.
type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("order is nil")
	}

	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}

	const query = `
		INSERT INTO orders (id, items, total_price, status, table_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET items = EXCLUDED.items,
			total_price = EXCLUDED.total_price,
			status = EXCLUDED.status,
			table_number = EXCLUDED.table_number,
			updated_at = EXCLUDED.updated_at;
	`

	if err := r.ensureTable(ctx); err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, query,
		order.ID,
		items,
		order.TotalPrice,
		string(order.Status),
		order.TableNumber,
		order.CreatedAt,
		order.UpdatedAt,
	)
	return err
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	const query = `
		SELECT id, items, total_price, status, table_number, created_at, updated_at
		FROM orders
		WHERE id = $1;
	`
	var (
		o      domain.Order
		items  []byte
		status string
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID,
		&items,
		&o.TotalPrice,
		&status,
		&o.TableNumber,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	o.Status = domain.Status(status)
	return &o, nil
}

func (r *OrderRepository) ensureTable(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			items JSONB NOT NULL,
			total_price NUMERIC NOT NULL,
			status TEXT NOT NULL,
			table_number TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
	`
	_, err := r.pool.Exec(ctx, stmt)
	return err
}
