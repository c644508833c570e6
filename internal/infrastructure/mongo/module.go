package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Config — настройки подключения к MongoDB. Переменные: SHOP_MONGO_*.
type Config struct {
	URI        string        `envconfig:"URI" default:"mongodb://localhost:27017"`
	Database   string        `envconfig:"DATABASE" default:"lizzyshop"`
	Collection string        `envconfig:"COLLECTION" default:"checkouts"`
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"10s"` // выбор сервера и стартовый пинг
}

// Client — обёртка над mongo.Client с базой и коллекцией журнала оформлений.
type Client struct {
	*mongo.Client
	cfg Config
}

// New подключается к MongoDB по конфигу, проверяет пингом и создаёт индексы коллекции.
func New(ctx context.Context, cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = &Config{URI: "mongodb://localhost:27017", Database: "lizzyshop", Collection: "checkouts"}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client, err := mongo.Connect(options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	c := &Client{Client: client, cfg: *cfg}
	if err := c.ensureIndexes(pingCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return c, nil
}

// ensureIndexes — индекс по времени для истории (последние сначала) и по состоянию для выборок.
func (c *Client) ensureIndexes(ctx context.Context) error {
	_, err := c.Coll().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "state", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("mongo indexes: %w", err)
	}
	return nil
}

// DB возвращает базу по конфигу.
func (c *Client) DB() *mongo.Database {
	return c.Database(c.cfg.Database)
}

// Coll возвращает коллекцию попыток оформления.
func (c *Client) Coll() *mongo.Collection {
	return c.DB().Collection(c.cfg.Collection)
}
