package avro

import (
	"time"

	"github.com/obsidianspecter/demo-delivery/internal/domain/order"
)

// OrderEvent matches OrderEventSchema. JSON tags mirror the Avro field
// names so the codec's JSON roundtrip maps fields directly.
type OrderEvent struct {
	Type        string  `json:"type"`
	OrderID     string  `json:"order_id"`
	Status      string  `json:"status"`
	TableNumber string  `json:"table_number"`
	TotalPrice  float64 `json:"total_price"`
	ItemCount   int     `json:"item_count"`
	OccurredAt  string  `json:"occurred_at"`
}

// NewOrderEvent snapshots an order into an event of the given type.
func NewOrderEvent(eventType string, o order.Order) OrderEvent {
	return OrderEvent{
		Type:        eventType,
		OrderID:     o.ID,
		Status:      string(o.Status),
		TableNumber: o.TableNumber,
		TotalPrice:  o.TotalPrice,
		ItemCount:   len(o.Items),
		OccurredAt:  o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}
