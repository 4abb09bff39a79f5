package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/obsidianspecter/demo-delivery/internal/domain/order"
	"github.com/obsidianspecter/demo-delivery/pkg/logger"
)

// Store is the sole owner of the in-process order collection. All
// mutations happen under one mutex, and subscribers are notified before
// the mutating call returns, so a mutation and its fan-out are atomic
// with respect to other mutations. Subscribers must not call back into
// the store from inside the callback.
type Store struct {
	mu          sync.Mutex
	orders      []*order.Order
	byID        map[string]*order.Order
	subscribers []subscription
	nextSubID   int
	log         logger.Logger
}

type subscription struct {
	id int
	fn func(orders []order.Order)
}

func NewStore(log logger.Logger) *Store {
	return &Store{
		byID: make(map[string]*order.Order),
		log:  log,
	}
}

// Create places a new order with status Pending and notifies subscribers.
func (s *Store) Create(items []order.OrderItem, totalPrice float64, tableNumber string) (order.Order, error) {
	id := "order-" + uuid.NewString()
	o, err := order.NewOrder(id, cloneItems(items), totalPrice, tableNumber)
	if err != nil {
		return order.Order{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, o)
	s.byID[o.ID] = o
	s.notifyLocked()

	return o.Clone(), nil
}

// UpdateStatus replaces an order's status and refreshes updatedAt.
// It reports false and performs no mutation when the id is unknown.
// Backward or duplicate transitions are not rejected: manual kitchen
// updates race the simulator timers and whichever fires first wins.
func (s *Store) UpdateStatus(id string, status order.Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.byID[id]
	if !ok {
		return false
	}

	o.Status = status
	o.UpdatedAt = time.Now().UTC()
	s.notifyLocked()
	return true
}

// UpdateTable moves an order to another table, with the same
// lookup-or-no-op semantics as UpdateStatus.
func (s *Store) UpdateTable(id, tableNumber string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.byID[id]
	if !ok {
		return false
	}

	o.TableNumber = tableNumber
	o.UpdatedAt = time.Now().UTC()
	s.notifyLocked()
	return true
}

// GetByID returns a copy of the order with timestamps normalized.
func (s *Store) GetByID(id string) (order.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.byID[id]
	if !ok {
		return order.Order{}, false
	}

	cp := o.Clone()
	normalize(&cp)
	return cp, true
}

// GetAll returns a snapshot of every order in creation order.
func (s *Store) GetAll() []order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers a callback for every subsequent mutation and
// returns the function that removes exactly that callback. Each
// callback receives its own fresh snapshot of the collection.
func (s *Store) Subscribe(fn func(orders []order.Order)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// notifyLocked delivers a fresh snapshot to every subscriber in
// subscription order. A panicking subscriber is logged and skipped so it
// cannot starve the ones registered after it.
func (s *Store) notifyLocked() {
	for _, sub := range s.subscribers {
		s.deliver(sub, s.snapshotLocked())
	}
}

func (s *Store) deliver(sub subscription, snapshot []order.Order) {
	defer func() {
		if r := recover(); r != nil && s.log != nil {
			s.log.Error("order subscriber panicked",
				logger.Int("subscriber_id", sub.id),
				logger.Any("panic", r),
			)
		}
	}()
	sub.fn(snapshot)
}

func (s *Store) snapshotLocked() []order.Order {
	snapshot := make([]order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		cp := o.Clone()
		normalize(&cp)
		snapshot = append(snapshot, cp)
	}
	return snapshot
}

// normalize materializes updatedAt for orders that were stored before
// the field was set, keeping createdAt <= updatedAt.
func normalize(o *order.Order) {
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = o.CreatedAt
	}
}

func cloneItems(items []order.OrderItem) []order.OrderItem {
	cp := make([]order.OrderItem, len(items))
	copy(cp, items)
	return cp
}
