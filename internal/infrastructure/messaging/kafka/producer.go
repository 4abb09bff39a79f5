package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/obsidianspecter/demo-delivery/internal/config"
	"github.com/obsidianspecter/demo-delivery/pkg/logger"
)

// EventProducer publishes Avro-encoded order events. Events are keyed
// by order id so per-order ordering is preserved within a partition.
type EventProducer struct {
	client *kgo.Client
	topic  string
	logger logger.Logger
}

func NewEventProducer(cfg config.KafkaConfig, log logger.Logger) (*EventProducer, error) {
	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.EventTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.DisableIdempotentWrite(),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	log.Info("kafka producer ready",
		logger.Any("brokers", cfg.Brokers),
		logger.String("topic", cfg.EventTopic),
	)

	return &EventProducer{
		client: client,
		topic:  cfg.EventTopic,
		logger: log,
	}, nil
}

func (p *EventProducer) PublishEvent(ctx context.Context, key string, payload []byte) error {
	if len(payload) == 0 {
		return fmt.Errorf("payload is empty")
	}

	rec := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(key),
		Value:     payload,
		Timestamp: time.Now().UTC(),
	}

	results := p.client.ProduceSync(ctx, rec)
	if err := results.FirstErr(); err != nil {
		p.logger.Error("publish order event failed",
			logger.String("topic", p.topic),
			logger.String("key", key),
			logger.Error(err),
		)
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}

	return nil
}

func (p *EventProducer) Close(ctx context.Context) error {
	p.logger.Info("closing kafka producer", logger.String("topic", p.topic))
	if p.client != nil {
		p.client.Close()
	}
	return nil
}
