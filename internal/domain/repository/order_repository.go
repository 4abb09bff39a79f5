package repository

import (
	"context"

	"github.com/obsidianspecter/demo-delivery/internal/domain/menu"
	"github.com/obsidianspecter/demo-delivery/internal/domain/order"
)

// OrderRepository is the optional write-through persistence behind the
// in-memory store. Save upserts on id. FindByID returns (nil, nil) when
// the order does not exist.
type OrderRepository interface {
	Save(ctx context.Context, order *order.Order) error
	FindByID(ctx context.Context, id string) (*order.Order, error)
}

// MenuRepository serves a restaurant's catalog when a database is
// configured; callers fall back to the sample catalog otherwise.
type MenuRepository interface {
	ListByRestaurant(ctx context.Context, restaurantID string) ([]menu.MenuItem, error)
}
