package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/obsidianspecter/demo-delivery/internal/application/notifier"
	"github.com/obsidianspecter/demo-delivery/internal/config"
	"github.com/obsidianspecter/demo-delivery/internal/infrastructure/encoding/avro"
	kafkainfra "github.com/obsidianspecter/demo-delivery/internal/infrastructure/messaging/kafka"
	"github.com/obsidianspecter/demo-delivery/pkg/logger"
)

// The notifier consumes order events from Kafka and raises kitchen
// notifications for them. It only makes sense with Kafka configured.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	if !cfg.Kafka.Enabled() {
		log.Fatal("KAFKA_BOOTSTRAP_SERVERS is required for the notifier")
	}

	zlog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	codec, err := avro.NewCodec(avro.OrderEventSchema)
	if err != nil {
		log.Fatalf("create avro codec failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafkainfra.NewEventConsumer(cfg.Kafka, codec, notifier.NewService(zlog))
	defer consumer.Close()

	zlog.Info("kitchen notifier started",
		logger.Any("brokers", cfg.Kafka.Brokers),
		logger.String("topic", cfg.Kafka.EventTopic),
	)

	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("consumer stopped: %v", err)
	}
}
