package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/obsidianspecter/demo-delivery/internal/domain/order"
	"github.com/obsidianspecter/demo-delivery/internal/infrastructure/encoding/avro"
)

// OrderEventPublisher turns domain orders into Avro-encoded events and
// hands them to the producer. It satisfies the order service's
// EventPublisher interface.
type OrderEventPublisher struct {
	producer *EventProducer
	codec    *avro.Codec
}

func NewOrderEventPublisher(producer *EventProducer, codec *avro.Codec) *OrderEventPublisher {
	return &OrderEventPublisher{producer: producer, codec: codec}
}

func (p *OrderEventPublisher) PublishOrderEvent(ctx context.Context, eventType string, o order.Order) error {
	event := avro.NewOrderEvent(eventType, o)

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	binary, err := p.codec.EncodeJSON(payload)
	if err != nil {
		return fmt.Errorf("avro encode event: %w", err)
	}

	return p.producer.PublishEvent(ctx, o.ID, binary)
}
