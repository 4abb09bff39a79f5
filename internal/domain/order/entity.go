package order

import "time"

// OrderItem is one line of an order: a menu item at the price it was
// sold for, with the quantity and an optional customer note.
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Notes    string  `json:"notes,omitempty"`
}

// Order tracks a placed table order through its status lifecycle.
// TotalPrice is supplied by the caller at creation and never recomputed;
// items do not change after the order is placed.
type Order struct {
	ID          string      `json:"id"`
	Items       []OrderItem `json:"items"`
	TotalPrice  float64     `json:"totalPrice"`
	Status      Status      `json:"status"`
	TableNumber string      `json:"tableNumber"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func NewOrder(id string, items []OrderItem, totalPrice float64, tableNumber string) (*Order, error) {
	if id == "" {
		return nil, ErrMissingField
	}
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}
	if totalPrice <= 0 {
		return nil, ErrInvalidPrice
	}

	now := time.Now().UTC()
	return &Order{
		ID:          id,
		Items:       items,
		TotalPrice:  totalPrice,
		Status:      StatusPending,
		TableNumber: tableNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Clone returns a deep copy so callers can hand out orders without
// exposing the items slice they own.
func (o *Order) Clone() Order {
	cp := *o
	cp.Items = make([]OrderItem, len(o.Items))
	copy(cp.Items, o.Items)
	return cp
}
