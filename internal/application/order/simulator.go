package order

import (
	"time"

	"github.com/obsidianspecter/demo-delivery/internal/config"
	domain "github.com/obsidianspecter/demo-delivery/internal/domain/order"
	"github.com/obsidianspecter/demo-delivery/pkg/logger"
)

// StatusUpdater is the slice of the store the simulator needs.
type StatusUpdater interface {
	UpdateStatus(id string, status domain.Status) bool
}

// Simulator walks a freshly placed order through the kitchen without
// any human input: Preparing after the preparing delay, Ready for
// Delivery after the ready delay. Both timers are scheduled eagerly at
// creation, fire independently, and are not cancelable; a manual
// kitchen update racing a timer is resolved by wall-clock order.
// Pending timers are lost on process exit, leaving orders in an
// intermediate status; that is an accepted property of the simulation.
type Simulator struct {
	updater        StatusUpdater
	preparingDelay time.Duration
	readyDelay     time.Duration
	log            logger.Logger
}

func NewSimulator(updater StatusUpdater, cfg config.SimulationConfig, log logger.Logger) *Simulator {
	return &Simulator{
		updater:        updater,
		preparingDelay: cfg.PreparingDelay,
		readyDelay:     cfg.ReadyDelay,
		log:            log,
	}
}

// Begin schedules the two forward transitions for an order. Fire and forget.
func (s *Simulator) Begin(orderID string) {
	s.schedule(orderID, domain.StatusPreparing, s.preparingDelay)
	s.schedule(orderID, domain.StatusReady, s.readyDelay)
}

func (s *Simulator) schedule(orderID string, status domain.Status, delay time.Duration) {
	time.AfterFunc(delay, func() {
		if s.updater.UpdateStatus(orderID, status) && s.log != nil {
			s.log.Debug("simulated status transition",
				logger.String("order_id", orderID),
				logger.String("status", string(status)),
			)
		}
	})
}
