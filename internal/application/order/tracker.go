package order

import (
	"sync"
	"time"

	domain "github.com/obsidianspecter/demo-delivery/internal/domain/order"
	"github.com/obsidianspecter/demo-delivery/pkg/logger"
)

// WatchableStore is the slice of the store the delivery tracker needs.
type WatchableStore interface {
	Subscribe(fn func(orders []domain.Order)) (unsubscribe func())
	GetAll() []domain.Order
	UpdateStatus(id string, status domain.Status) bool
}

// DeliveryTracker watches the store for orders entering Ready for
// Delivery and marks them Delivered after the delivery delay. Unlike
// the simulator's timers, a pending delivery is canceled when the order
// leaves Ready for Delivery first, or when the tracker stops.
type DeliveryTracker struct {
	store WatchableStore
	delay time.Duration
	log   logger.Logger

	mu          sync.Mutex
	timers      map[string]*time.Timer
	unsubscribe func()
}

func NewDeliveryTracker(store WatchableStore, delay time.Duration, log logger.Logger) *DeliveryTracker {
	return &DeliveryTracker{
		store:  store,
		delay:  delay,
		log:    log,
		timers: make(map[string]*time.Timer),
	}
}

// Start subscribes to store mutations and seeds timers for orders that
// are already Ready for Delivery.
func (t *DeliveryTracker) Start() {
	t.unsubscribe = t.store.Subscribe(t.observe)
	t.observe(t.store.GetAll())
}

// Stop cancels every pending delivery and detaches from the store.
func (t *DeliveryTracker) Stop() {
	if t.unsubscribe != nil {
		t.unsubscribe()
		t.unsubscribe = nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for id, timer := range t.timers {
		timer.Stop()
		delete(t.timers, id)
	}
}

// observe runs inside the store's notification fan-out, so it only
// manages timers here and never calls back into the store.
func (t *DeliveryTracker) observe(orders []domain.Order) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, o := range orders {
		if o.Status == domain.StatusReady {
			if _, pending := t.timers[o.ID]; !pending {
				id := o.ID
				t.timers[id] = time.AfterFunc(t.delay, func() { t.deliver(id) })
			}
			continue
		}

		if timer, pending := t.timers[o.ID]; pending {
			timer.Stop()
			delete(t.timers, o.ID)
		}
	}
}

func (t *DeliveryTracker) deliver(id string) {
	t.mu.Lock()
	_, pending := t.timers[id]
	delete(t.timers, id)
	t.mu.Unlock()

	// The order may have been moved off Ready for Delivery between the
	// timer firing and this check; skip if the timer was already canceled.
	if !pending {
		return
	}

	if t.store.UpdateStatus(id, domain.StatusDelivered) && t.log != nil {
		t.log.Info("order delivered", logger.String("order_id", id))
	}
}
