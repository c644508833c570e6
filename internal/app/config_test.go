package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv уводит LoadCfg от .env в рабочей директории.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv(envFileVar, filepath.Join(t.TempDir(), "absent.env"))
}

func TestLoadCfg_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := LoadCfg()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "9090", cfg.Grpc.Port)
	assert.Equal(t, BackendStatic, cfg.Backend.Validator)
	assert.Equal(t, BackendMemory, cfg.Backend.Stock)
	assert.Equal(t, BackendMemory, cfg.Backend.Payment)
	assert.Equal(t, BackendNone, cfg.Backend.Events)
	assert.Equal(t, []string{"add", "subtract", "multiply", "divide"}, cfg.Calculator.AllowedOperations)
	assert.Equal(t, 100, cfg.Checkout.InitialStock)
	assert.True(t, cfg.Checkout.PaymentLimit.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, 2*time.Second, cfg.Checkout.PaymentTimeout)
	assert.Equal(t, "lizzyshop:stock", cfg.Redis.StockKey)
	assert.Equal(t, "checkouts", cfg.Mongo.Collection)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadCfg_FromEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("SHOP_SERVER_PORT", "18080")
	t.Setenv("SHOP_BACKEND_STOCK", "redis")
	t.Setenv("SHOP_BACKEND_PAYMENT", "pg")
	t.Setenv("SHOP_CALCULATOR_ALLOWED_OPERATIONS", "add,subtract")
	t.Setenv("SHOP_CHECKOUT_PAYMENT_LIMIT", "250.50")
	t.Setenv("SHOP_KAFKA_TOPIC", "shop.test")

	cfg, err := LoadCfg()
	require.NoError(t, err)

	assert.Equal(t, "18080", cfg.Server.Port)
	assert.Equal(t, BackendRedis, cfg.Backend.Stock)
	assert.Equal(t, BackendPostgres, cfg.Backend.Payment)
	assert.Equal(t, []string{"add", "subtract"}, cfg.Calculator.AllowedOperations)
	assert.True(t, cfg.Checkout.PaymentLimit.Equal(decimal.RequireFromString("250.5")))
	assert.Equal(t, "shop.test", cfg.Kafka.Topic)
}

func TestLoadCfg_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SHOP_CHECKOUT_INITIAL_STOCK=7\nSHOP_LOG_LEVEL=debug\n"), 0o600))
	t.Setenv(envFileVar, path)
	// godotenv не перетирает уже заданные переменные; t.Setenv вернёт их после теста
	t.Setenv("SHOP_CHECKOUT_INITIAL_STOCK", "")
	t.Setenv("SHOP_LOG_LEVEL", "")
	os.Unsetenv("SHOP_CHECKOUT_INITIAL_STOCK")
	os.Unsetenv("SHOP_LOG_LEVEL")

	cfg, err := LoadCfg()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Checkout.InitialStock)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadCfg_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown backend", map[string]string{"SHOP_BACKEND_STOCK": "etcd"}},
		{"analytics without events", map[string]string{"SHOP_BACKEND_ANALYTICS": "clickhouse"}},
		{"unknown operation", map[string]string{"SHOP_CALCULATOR_ALLOWED_OPERATIONS": "add,mod"}},
		{"negative stock", map[string]string{"SHOP_CHECKOUT_INITIAL_STOCK": "-1"}},
		{"negative limit", map[string]string{"SHOP_CHECKOUT_PAYMENT_LIMIT": "-5"}},
		{"bad limit", map[string]string{"SHOP_CHECKOUT_PAYMENT_LIMIT": "lots"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadCfg()
			assert.Error(t, err)
		})
	}
}
