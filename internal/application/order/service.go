package order

import (
	"context"

	domain "github.com/obsidianspecter/demo-delivery/internal/domain/order"
	"github.com/obsidianspecter/demo-delivery/internal/domain/repository"
	"github.com/obsidianspecter/demo-delivery/pkg/logger"
	"github.com/obsidianspecter/demo-delivery/pkg/metrics"
)

// Store is the in-memory order collection the service drives.
type Store interface {
	Create(items []domain.OrderItem, totalPrice float64, tableNumber string) (domain.Order, error)
	UpdateStatus(id string, status domain.Status) bool
	UpdateTable(id, tableNumber string) bool
	GetByID(id string) (domain.Order, bool)
	GetAll() []domain.Order
}

// EventPublisher pushes order lifecycle events to the message bus.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, eventType string, o domain.Order) error
}

// Event types the service publishes.
const (
	EventOrderCreated  = "order_created"
	EventStatusChanged = "status_changed"
	EventTableChanged  = "table_changed"
)

// Service drives the order store and fans results out to the optional
// write-through repository and event publisher. Both are best-effort:
// a persistence or publish failure is logged, never surfaced to the
// customer placing the order.
type Service struct {
	store     Store
	simulator *Simulator
	repo      repository.OrderRepository
	publisher EventPublisher
	metrics   *metrics.OrderMetrics
	log       logger.Logger
}

// PlaceOrderCommand is the create-order request body. TotalPrice is the
// caller's computed cart total and is stored as-is.
type PlaceOrderCommand struct {
	Items       []domain.OrderItem `json:"items"`
	TotalPrice  float64            `json:"totalPrice"`
	TableNumber string             `json:"tableNumber"`
}

// NewService wires the order service. repo, publisher and m may be nil
// when the corresponding backend is not configured.
func NewService(
	store Store,
	simulator *Simulator,
	repo repository.OrderRepository,
	publisher EventPublisher,
	m *metrics.OrderMetrics,
	log logger.Logger,
) *Service {
	return &Service{
		store:     store,
		simulator: simulator,
		repo:      repo,
		publisher: publisher,
		metrics:   m,
		log:       log,
	}
}

// PlaceOrder creates an order in the store, kicks off the kitchen
// simulation and returns the created order.
func (s *Service) PlaceOrder(ctx context.Context, cmd PlaceOrderCommand) (*domain.Order, error) {
	o, err := s.store.Create(cmd.Items, cmd.TotalPrice, cmd.TableNumber)
	if err != nil {
		return nil, err
	}

	if s.simulator != nil {
		s.simulator.Begin(o.ID)
	}
	if s.metrics != nil {
		s.metrics.OrdersCreated.Inc()
	}

	s.persist(ctx, o)
	s.publish(ctx, EventOrderCreated, o)

	s.log.Info("order placed",
		logger.String("order_id", o.ID),
		logger.String("table", o.TableNumber),
		logger.Int("items", len(o.Items)),
		logger.Float64("total", o.TotalPrice),
	)
	return &o, nil
}

// GetOrder looks the order up in the store, falling back to the
// repository when one is configured.
func (s *Service) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	if o, ok := s.store.GetByID(id); ok {
		return o, nil
	}

	if s.repo != nil {
		o, err := s.repo.FindByID(ctx, id)
		if err != nil {
			s.log.Warn("order lookup in repository failed",
				logger.String("order_id", id),
				logger.Error(err),
			)
		} else if o != nil {
			return *o, nil
		}
	}

	return domain.Order{}, domain.ErrNotFound
}

// ListOrders returns all orders, optionally filtered by status.
// rawStatus == "" means no filter.
func (s *Service) ListOrders(rawStatus string) ([]domain.Order, error) {
	all := s.store.GetAll()
	if rawStatus == "" {
		return all, nil
	}

	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Order, 0, len(all))
	for _, o := range all {
		if o.Status == status {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

// UpdateStatus applies a manual status change, racing any pending
// simulator timers; whichever lands first wins.
func (s *Service) UpdateStatus(ctx context.Context, id, rawStatus string) error {
	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return err
	}

	if !s.store.UpdateStatus(id, status) {
		return domain.ErrNotFound
	}
	if s.metrics != nil {
		s.metrics.StatusTransitions.WithLabelValues(string(status)).Inc()
	}

	o, _ := s.store.GetByID(id)
	s.persist(ctx, o)
	s.publish(ctx, EventStatusChanged, o)

	s.log.Info("order status updated",
		logger.String("order_id", id),
		logger.String("status", string(status)),
	)
	return nil
}

// UpdateTable moves an order to another table.
func (s *Service) UpdateTable(ctx context.Context, id, tableNumber string) error {
	if tableNumber == "" {
		return domain.ErrMissingField
	}

	if !s.store.UpdateTable(id, tableNumber) {
		return domain.ErrNotFound
	}

	o, _ := s.store.GetByID(id)
	s.persist(ctx, o)
	s.publish(ctx, EventTableChanged, o)
	return nil
}

func (s *Service) persist(ctx context.Context, o domain.Order) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Save(ctx, &o); err != nil {
		s.log.Warn("persist order failed",
			logger.String("order_id", o.ID),
			logger.Error(err),
		)
	}
}

func (s *Service) publish(ctx context.Context, eventType string, o domain.Order) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, eventType, o); err != nil {
		if s.metrics != nil {
			s.metrics.EventsPublished.WithLabelValues("error").Inc()
		}
		s.log.Warn("publish order event failed",
			logger.String("order_id", o.ID),
			logger.String("event", eventType),
			logger.Error(err),
		)
		return
	}
	if s.metrics != nil {
		s.metrics.EventsPublished.WithLabelValues("ok").Inc()
	}
}
