package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config — настройки подключения к Redis. Переменные: SHOP_REDIS_*.
// StockKey хранит остаток склада, PolicyKey — множество разрешённых операций.
type Config struct {
	Host      string        `envconfig:"HOST" default:"localhost"`
	Port      string        `envconfig:"PORT" default:"6379"`
	Password  string        `envconfig:"PASSWORD" default:""`
	DB        int           `envconfig:"DB" default:"0"`
	PoolSize  int           `envconfig:"POOL_SIZE" default:"10"`
	StockKey  string        `envconfig:"STOCK_KEY" default:"lizzyshop:stock"`
	PolicyKey string        `envconfig:"POLICY_KEY" default:"lizzyshop:operations"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"500ms"` // на одну проверку склада/политики
}

// Addr возвращает адрес "host:port".
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Client — обёртка над redis.Client, общая для склада и политики операций.
type Client struct {
	*redis.Client
}

// New подключается к Redis по конфигу и проверяет пингом.
// Таймауты чтения/записи равны Timeout: адаптеры портов не должны висеть дольше.
func New(cfg *Config) (*Client, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	}
	if cfg.Timeout > 0 {
		opts.ReadTimeout = cfg.Timeout
		opts.WriteTimeout = cfg.Timeout
	}
	cli := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Client{Client: cli}, nil
}

// Close закрывает соединение.
func (c *Client) Close() error {
	return c.Client.Close()
}

// Ping проверяет соединение (для readiness).
func (c *Client) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}
