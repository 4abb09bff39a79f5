package notifier

import (
	"context"

	app "github.com/obsidianspecter/demo-delivery/internal/application/order"
	domain "github.com/obsidianspecter/demo-delivery/internal/domain/order"
	"github.com/obsidianspecter/demo-delivery/internal/infrastructure/encoding/avro"
	"github.com/obsidianspecter/demo-delivery/pkg/logger"
)

// Service turns order events into kitchen notifications. The demo
// notifier just logs them; a real deployment would push to staff
// devices here.
type Service struct {
	log logger.Logger
}

func NewService(log logger.Logger) *Service {
	return &Service{log: log}
}

func (s *Service) HandleOrderEvent(ctx context.Context, event avro.OrderEvent) error {
	fields := []logger.Field{
		logger.String("order_id", event.OrderID),
		logger.String("table", event.TableNumber),
		logger.String("status", event.Status),
	}

	switch event.Type {
	case app.EventOrderCreated:
		s.log.Info("new order placed", append(fields,
			logger.Int("items", event.ItemCount),
			logger.Float64("total", event.TotalPrice),
		)...)
	case app.EventStatusChanged:
		if event.Status == string(domain.StatusReady) {
			s.log.Info("order ready for delivery", fields...)
		} else {
			s.log.Info("order status changed", fields...)
		}
	case app.EventTableChanged:
		s.log.Info("order moved to another table", fields...)
	default:
		s.log.Warn("unknown order event type", logger.String("type", event.Type))
	}

	return nil
}
