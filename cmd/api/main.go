package main

import (
	"context"
	"log"

	menuapp "github.com/obsidianspecter/demo-delivery/internal/application/menu"
	orderapp "github.com/obsidianspecter/demo-delivery/internal/application/order"
	"github.com/obsidianspecter/demo-delivery/internal/config"
	"github.com/obsidianspecter/demo-delivery/internal/domain/repository"
	"github.com/obsidianspecter/demo-delivery/internal/infrastructure/encoding/avro"
	ginserver "github.com/obsidianspecter/demo-delivery/internal/infrastructure/http/gin"
	kafkainfra "github.com/obsidianspecter/demo-delivery/internal/infrastructure/messaging/kafka"
	"github.com/obsidianspecter/demo-delivery/internal/infrastructure/persistence/memory"
	"github.com/obsidianspecter/demo-delivery/internal/infrastructure/persistence/postgres"
	"github.com/obsidianspecter/demo-delivery/internal/interfaces/http/handler"
	"github.com/obsidianspecter/demo-delivery/internal/interfaces/http/router"
	"github.com/obsidianspecter/demo-delivery/pkg/logger"
	"github.com/obsidianspecter/demo-delivery/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	zlog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := memory.NewStore(zlog)
	orderMetrics := metrics.NewOrderMetrics()

	// Postgres is optional: without POSTGRES_HOST the service runs purely
	// on the in-memory store and the sample catalog.
	var (
		orderRepo repository.OrderRepository
		menuRepo  repository.MenuRepository
	)
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(cfg.DB)
		if err != nil {
			log.Fatalf("postgres connection failed: %v", err)
		}
		defer pool.Close()

		orderRepo = postgres.NewOrderRepository(pool)
		menuRepo = postgres.NewMenuRepository(pool)
		zlog.Info("postgres persistence enabled", logger.String("host", cfg.DB.Host))
	} else {
		zlog.Info("no database configured, using in-memory sample data")
	}

	// Kafka is optional too: without brokers no events are published.
	var publisher orderapp.EventPublisher
	if cfg.Kafka.Enabled() {
		codec, err := avro.NewCodec(avro.OrderEventSchema)
		if err != nil {
			log.Fatalf("create avro codec failed: %v", err)
		}
		producer, err := kafkainfra.NewEventProducer(cfg.Kafka, zlog)
		if err != nil {
			log.Fatalf("kafka producer failed: %v", err)
		}
		defer producer.Close(ctx)

		publisher = kafkainfra.NewOrderEventPublisher(producer, codec)
	}

	simulator := orderapp.NewSimulator(store, cfg.Simulation, zlog)
	orderService := orderapp.NewService(store, simulator, orderRepo, publisher, orderMetrics, zlog)
	menuService := menuapp.NewService(menuRepo, zlog)

	tracker := orderapp.NewDeliveryTracker(store, cfg.Simulation.DeliveryDelay, zlog)
	tracker.Start()
	defer tracker.Stop()

	engine := ginserver.NewEngine()
	router.RegisterRoutes(engine, handler.NewMenuHandler(menuService), handler.NewOrderHandler(orderService))

	zlog.Info("starting http server", logger.String("addr", cfg.Server.Address()))

	server := ginserver.NewServer(cfg.Server, engine)
	if err := server.Run(); err != nil {
		log.Fatalf("server run failed: %v", err)
	}
}
