package app

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	apigrpc "lizzyShop/internal/api/grpc"
	"lizzyShop/internal/api/http"
	"lizzyShop/internal/domain"
	"lizzyShop/internal/infrastructure/click"
	"lizzyShop/internal/infrastructure/kafka"
	"lizzyShop/internal/infrastructure/mongo"
	"lizzyShop/internal/infrastructure/pg"
	"lizzyShop/internal/infrastructure/redis"
)

// AppName — префикс переменных окружения.
const AppName = "SHOP"

// envFileVar — переменная с путём до .env.
const envFileVar = "SHOP_ENV_FILE"

// Значения SHOP_BACKEND_*.
const (
	BackendMemory     = "memory"
	BackendStatic     = "static"
	BackendRedis      = "redis"
	BackendPostgres   = "pg"
	BackendMongo      = "mongo"
	BackendKafka      = "kafka"
	BackendClickHouse = "clickhouse"
	BackendNone       = "none"
)

// BackendsConfig — какие реализации портов поднимать. Переменные: SHOP_BACKEND_*.
// По умолчанию всё в памяти, внешняя инфраструктура не нужна.
type BackendsConfig struct {
	Validator  string `envconfig:"VALIDATOR" default:"static"`  // static | redis
	Stock      string `envconfig:"STOCK" default:"memory"`      // memory | redis
	Payment    string `envconfig:"PAYMENT" default:"memory"`    // memory | pg
	Operations string `envconfig:"OPERATIONS" default:"memory"` // memory | pg
	Checkouts  string `envconfig:"CHECKOUTS" default:"memory"`  // memory | mongo
	Events     string `envconfig:"EVENTS" default:"none"`       // none | kafka
	Analytics  string `envconfig:"ANALYTICS" default:"none"`    // none | clickhouse
}

// CalculatorConfig — настройки калькулятора. Переменные: SHOP_CALCULATOR_*.
type CalculatorConfig struct {
	AllowedOperations []string `envconfig:"ALLOWED_OPERATIONS" default:"add,subtract,multiply,divide"`
}

// CheckoutConfig — настройки оформления заказа. Переменные: SHOP_CHECKOUT_*.
type CheckoutConfig struct {
	InitialStock   int             `envconfig:"INITIAL_STOCK" default:"100"`
	SeedStock      bool            `envconfig:"SEED_STOCK" default:"true"` // для redis: записать INITIAL_STOCK при старте
	PaymentsOK     bool            `envconfig:"PAYMENTS_OK" default:"true"` // для memory: исход всех списаний
	PaymentLimit   decimal.Decimal `envconfig:"PAYMENT_LIMIT" default:"10000"`
	PaymentTimeout time.Duration   `envconfig:"PAYMENT_TIMEOUT" default:"2s"`
}

// Config — конфиг приложения. Заполняется через envconfig с префиксом SHOP.
type Config struct {
	Server     http.ServerConfig `envconfig:"SERVER"`
	Grpc       apigrpc.Config    `envconfig:"GRPC"`
	DB         pg.Config         `envconfig:"DB"`
	Redis      redis.Config      `envconfig:"REDIS"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
	Backend    BackendsConfig    `envconfig:"BACKEND"`
	Calculator CalculatorConfig  `envconfig:"CALCULATOR"`
	Checkout   CheckoutConfig    `envconfig:"CHECKOUT"`
	LogLevel   string            `envconfig:"LOG_LEVEL" default:"info"`
	LogFile    string            `envconfig:"LOG_FILE" default:"app.log"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
// Путь до .env — SHOP_ENV_FILE, по умолчанию ./.env; отсутствие файла не ошибка.
func LoadCfg() (Config, error) {
	path := os.Getenv(envFileVar)
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		slog.Info("config: .env not loaded, using environment", "path", path, "error", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет согласованность выбранных бэкендов и настроек.
func (c Config) Validate() error {
	checks := []struct {
		name    string
		value   string
		allowed []string
	}{
		{"VALIDATOR", c.Backend.Validator, []string{BackendStatic, BackendRedis}},
		{"STOCK", c.Backend.Stock, []string{BackendMemory, BackendRedis}},
		{"PAYMENT", c.Backend.Payment, []string{BackendMemory, BackendPostgres}},
		{"OPERATIONS", c.Backend.Operations, []string{BackendMemory, BackendPostgres}},
		{"CHECKOUTS", c.Backend.Checkouts, []string{BackendMemory, BackendMongo}},
		{"EVENTS", c.Backend.Events, []string{BackendNone, BackendKafka}},
		{"ANALYTICS", c.Backend.Analytics, []string{BackendNone, BackendClickHouse}},
	}
	for _, ch := range checks {
		if !slices.Contains(ch.allowed, ch.value) {
			return fmt.Errorf("config: %s_BACKEND_%s=%q, want one of %v", AppName, ch.name, ch.value, ch.allowed)
		}
	}
	// события в аналитику доходят только через консьюмера
	if c.Backend.Analytics == BackendClickHouse && c.Backend.Events != BackendKafka {
		return fmt.Errorf("config: analytics backend %q requires events backend %q", BackendClickHouse, BackendKafka)
	}
	for _, op := range c.Calculator.AllowedOperations {
		if !slices.Contains(domain.Operations, domain.NormalizeOperation(op)) {
			return fmt.Errorf("config: unknown operation %q in %s_CALCULATOR_ALLOWED_OPERATIONS", op, AppName)
		}
	}
	if c.Checkout.InitialStock < 0 {
		return fmt.Errorf("config: %s_CHECKOUT_INITIAL_STOCK must not be negative", AppName)
	}
	if c.Checkout.PaymentLimit.IsNegative() {
		return fmt.Errorf("config: %s_CHECKOUT_PAYMENT_LIMIT must not be negative", AppName)
	}
	return nil
}
