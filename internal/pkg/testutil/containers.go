// Package testutil — хелперы интеграционных тестов: поднимают PostgreSQL, Redis, MongoDB
// и ClickHouse в Docker через testcontainers и заполняют их данными магазина.
//
// Запуск вместе с интеграционными тестами:
//
//	go test ./...
//
// Только юнит-тесты:
//
//	go test ./... -short
package testutil

import (
	"context"
	"flag"
	"fmt"
	"log"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

// StartupTimeout — сколько ждём подъёма контейнера пакета.
const StartupTimeout = 5 * time.Minute

// stopTimeout — сколько ждём остановки контейнера после тестов.
const stopTimeout = time.Minute

// Terminator — то, что умеет остановить контейнер.
type Terminator interface {
	Terminate(ctx context.Context, opts ...testcontainers.TerminateOption) error
}

// Stop останавливает контейнер, если он поднимался; ошибки только в лог.
func Stop(ctx context.Context, name string, c Terminator) {
	if c == nil {
		return
	}
	if err := c.Terminate(ctx); err != nil {
		log.Printf("stop %s container: %v", name, err)
	}
}

// Main — тело TestMain пакета с одним контейнером. В -short контейнер не поднимается,
// тесты сами делают t.Skip. Результат передай в os.Exit.
func Main[T Terminator](m *testing.M, name string, start func(context.Context) (T, error), ready func(T)) int {
	flag.Parse()
	if testing.Short() {
		return m.Run()
	}

	startCtx, cancel := context.WithTimeout(context.Background(), StartupTimeout)
	c, err := start(startCtx)
	cancel()
	if err != nil {
		log.Printf("%s container: %v", name, err)
		return 1
	}
	ready(c)

	code := m.Run()

	stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	Stop(stopCtx, name, c)
	return code
}

// endpoint возвращает хост и проброшенный порт контейнера.
func endpoint(ctx context.Context, c testcontainers.Container, port nat.Port) (host, mapped string, err error) {
	host, err = c.Host(ctx)
	if err != nil {
		return "", "", fmt.Errorf("host: %w", err)
	}
	p, err := c.MappedPort(ctx, port)
	if err != nil {
		return "", "", fmt.Errorf("port %s: %w", port, err)
	}
	return host, p.Port(), nil
}

// PostgresContainer — PostgreSQL для журнала операций и платёжного реестра.
type PostgresContainer struct {
	*postgres.PostgresContainer
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// NewPostgresContainer поднимает PostgreSQL и возвращает параметры подключения.
func NewPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	c := &PostgresContainer{User: "shop", Password: "shop", DBName: "lizzyshop_test"}

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(c.DBName),
		postgres.WithUsername(c.User),
		postgres.WithPassword(c.Password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("postgres container: %w", err)
	}
	c.PostgresContainer = container

	if c.Host, c.Port, err = endpoint(ctx, container, "5432/tcp"); err != nil {
		return nil, fmt.Errorf("postgres %w", err)
	}
	return c, nil
}

// RedisContainer — Redis для склада и политики операций.
type RedisContainer struct {
	*redis.RedisContainer
	Host string
	Port string
}

// NewRedisContainer поднимает Redis и возвращает параметры подключения.
func NewRedisContainer(ctx context.Context) (*RedisContainer, error) {
	container, err := redis.Run(ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("redis container: %w", err)
	}

	c := &RedisContainer{RedisContainer: container}
	if c.Host, c.Port, err = endpoint(ctx, container, "6379/tcp"); err != nil {
		return nil, fmt.Errorf("redis %w", err)
	}
	return c, nil
}

// Addr возвращает "host:port" для go-redis.
func (c *RedisContainer) Addr() string {
	return c.Host + ":" + c.Port
}

// MongoContainer — MongoDB для журнала оформлений.
type MongoContainer struct {
	*mongodb.MongoDBContainer
	Host string
	Port string
}

// NewMongoContainer поднимает MongoDB и возвращает параметры подключения.
func NewMongoContainer(ctx context.Context) (*MongoContainer, error) {
	container, err := mongodb.Run(ctx,
		"mongo:7",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Waiting for connections").
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("mongo container: %w", err)
	}

	c := &MongoContainer{MongoDBContainer: container}
	if c.Host, c.Port, err = endpoint(ctx, container, "27017/tcp"); err != nil {
		return nil, fmt.Errorf("mongo %w", err)
	}
	return c, nil
}

// URI возвращает строку подключения для mongo-driver.
func (c *MongoContainer) URI() string {
	return fmt.Sprintf("mongodb://%s:%s", c.Host, c.Port)
}

// ClickHouseContainer — ClickHouse для аналитики, нативный протокол.
type ClickHouseContainer struct {
	*clickhouse.ClickHouseContainer
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// NewClickHouseContainer поднимает ClickHouse и возвращает параметры подключения.
func NewClickHouseContainer(ctx context.Context) (*ClickHouseContainer, error) {
	c := &ClickHouseContainer{User: "default", Database: "default"}

	container, err := clickhouse.Run(ctx,
		"clickhouse/clickhouse-server:24-alpine",
		clickhouse.WithUsername(c.User),
		clickhouse.WithPassword(c.Password),
		clickhouse.WithDatabase(c.Database),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse container: %w", err)
	}
	c.ClickHouseContainer = container

	if c.Host, c.Port, err = endpoint(ctx, container, "9000/tcp"); err != nil {
		return nil, fmt.Errorf("clickhouse %w", err)
	}
	return c, nil
}
