package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/obsidianspecter/demo-delivery/internal/config"
	"github.com/obsidianspecter/demo-delivery/internal/infrastructure/encoding/avro"
)

// EventHandler reacts to a decoded order event.
type EventHandler interface {
	HandleOrderEvent(ctx context.Context, event avro.OrderEvent) error
}

// EventConsumer reads order events from the topic, decodes them and
// hands them to the handler. Used by the kitchen notifier.
type EventConsumer struct {
	reader  *kafkago.Reader
	codec   *avro.Codec
	handler EventHandler
}

func NewEventConsumer(cfg config.KafkaConfig, codec *avro.Codec, handler EventHandler) *EventConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.ConsumerGroup,
		Topic:    cfg.EventTopic,
		MinBytes: 1e3,
		MaxBytes: 1e6,
	})

	return &EventConsumer{
		reader:  reader,
		codec:   codec,
		handler: handler,
	}
}

func (c *EventConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		jsonData, err := c.codec.DecodeToJSON(msg.Value)
		if err != nil {
			return fmt.Errorf("decode message: %w", err)
		}

		var event avro.OrderEvent
		if err := json.Unmarshal(jsonData, &event); err != nil {
			return fmt.Errorf("unmarshal event: %w", err)
		}

		if err := c.handler.HandleOrderEvent(ctx, event); err != nil {
			return fmt.Errorf("handle event: %w", err)
		}
	}
}

func (c *EventConsumer) Close() {
	_ = c.reader.Close()
}
