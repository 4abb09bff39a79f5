package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Server     ServerConfig
	DB         PostgresConfig
	Kafka      KafkaConfig
	Simulation SimulationConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type ServerConfig struct {
	Host string
	Port int
}

// PostgresConfig is optional: an empty Host selects the in-memory
// sample-data path, which is a valid configuration, not an error.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int
}

// KafkaConfig is optional: no brokers means event publishing is disabled.
type KafkaConfig struct {
	Brokers       []string
	EventTopic    string
	ConsumerGroup string
}

// SimulationConfig holds the delays the status simulator uses to walk an
// order through the kitchen without manual input.
type SimulationConfig struct {
	PreparingDelay time.Duration
	ReadyDelay     time.Duration
	DeliveryDelay  time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "demo-delivery"),
			Env:  getEnv("APP_ENV", "local"),
		},
		Server: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnvAsInt("HTTP_PORT", 8040),
		},
		DB: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", ""),
			Port:     getEnvAsInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			DBName:   getEnv("POSTGRES_DB", "demo_delivery"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
		},
		Kafka: KafkaConfig{
			Brokers:       splitAndTrim(getEnv("KAFKA_BOOTSTRAP_SERVERS", "")),
			EventTopic:    getEnv("KAFKA_EVENT_TOPIC", "order-events"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "kitchen-notifier"),
		},
		Simulation: SimulationConfig{
			PreparingDelay: getEnvAsDuration("SIM_PREPARING_DELAY", 5*time.Second),
			ReadyDelay:     getEnvAsDuration("SIM_READY_DELAY", 10*time.Second),
			DeliveryDelay:  getEnvAsDuration("SIM_DELIVERY_DELAY", 5*time.Minute),
		},
	}

	return cfg, cfg.validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Enabled reports whether Postgres persistence was configured at all.
func (p PostgresConfig) Enabled() bool {
	return p.Host != ""
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// Enabled reports whether Kafka event publishing was configured.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

/* ================= helpers ================= */

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	if c.DB.Enabled() && (c.DB.User == "" || c.DB.DBName == "") {
		return fmt.Errorf("postgres config is incomplete")
	}
	if c.Simulation.PreparingDelay <= 0 || c.Simulation.ReadyDelay <= 0 || c.Simulation.DeliveryDelay <= 0 {
		return fmt.Errorf("simulation delays must be positive")
	}
	if c.Simulation.ReadyDelay <= c.Simulation.PreparingDelay {
		return fmt.Errorf("SIM_READY_DELAY must be greater than SIM_PREPARING_DELAY")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if val := strings.TrimSpace(p); val != "" {
			out = append(out, val)
		}
	}
	return out
}
