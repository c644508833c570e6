package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"lizzyShop/internal/api/http/controllers/system"
	"lizzyShop/internal/infrastructure/click"
	"lizzyShop/internal/infrastructure/kafka"
	"lizzyShop/internal/infrastructure/memory"
	"lizzyShop/internal/infrastructure/mongo"
	"lizzyShop/internal/infrastructure/pg"
	"lizzyShop/internal/infrastructure/redis"
	"lizzyShop/internal/ports"
	calcUsecase "lizzyShop/internal/usecase/calculator"
	checkoutUsecase "lizzyShop/internal/usecase/checkout"
)

// components — всё, что собрано по конфигу: use case'ы, проверки readiness, консьюмер и функции закрытия.
type components struct {
	calcUC     *calcUsecase.UseCase
	checkoutUC *checkoutUsecase.UseCase
	checks     []system.Check
	consumer   *kafka.Consumer
	closers    []func() error
}

// close закрывает ресурсы в обратном порядке.
func (c *components) close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	return errors.Join(errs...)
}

// connections — клиенты инфраструктуры, поднимаются лениво и только для выбранных бэкендов.
type connections struct {
	cfg   Config
	comps *components
	db    *pg.DB
	rdb   *redis.Client
}

func (cn *connections) postgres(ctx context.Context) (*pg.DB, error) {
	if cn.db != nil {
		return cn.db, nil
	}
	db, err := pg.New(&cn.cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("db: %w", err)
	}
	cn.comps.closers = append(cn.comps.closers, db.Close)
	if err := pg.Migrate(ctx, db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	cn.comps.checks = append(cn.comps.checks, system.Check{Name: "postgres", Pinger: db})
	cn.db = db
	return db, nil
}

func (cn *connections) redis() (*redis.Client, error) {
	if cn.rdb != nil {
		return cn.rdb, nil
	}
	rdb, err := redis.New(&cn.cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	cn.comps.closers = append(cn.comps.closers, rdb.Close)
	cn.comps.checks = append(cn.comps.checks, system.Check{Name: "redis", Pinger: rdb})
	cn.rdb = rdb
	return rdb, nil
}

// build собирает зависимости по конфигу. При ошибке уже открытые ресурсы закрываются.
func build(ctx context.Context, cfg Config, log *slog.Logger) (_ *components, err error) {
	comps := &components{}
	cn := &connections{cfg: cfg, comps: comps}
	defer func() {
		if err != nil {
			_ = comps.close()
		}
	}()

	validator, err := buildValidator(ctx, cn, log)
	if err != nil {
		return nil, err
	}
	stock, err := buildStock(ctx, cn, log)
	if err != nil {
		return nil, err
	}
	payment, err := buildPayment(ctx, cn, log)
	if err != nil {
		return nil, err
	}

	var (
		opRepo       ports.OperationRepository = memory.NewOperationJournal()
		checkoutRepo ports.CheckoutRepository  = memory.NewCheckoutJournal()
		broker       ports.IProducer           = memory.NopProducer{}
		analytics    ports.IAnalytics          = memory.NopAnalytics{}
	)

	if cfg.Backend.Operations == BackendPostgres {
		db, err := cn.postgres(ctx)
		if err != nil {
			return nil, err
		}
		opRepo = pg.NewOperationRepo(db, log)
	}

	if cfg.Backend.Checkouts == BackendMongo {
		mc, err := mongo.New(ctx, &cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("mongo: %w", err)
		}
		comps.closers = append(comps.closers, func() error { return mc.Disconnect(context.Background()) })
		repo := mongo.NewCheckoutRepo(mc, log)
		comps.checks = append(comps.checks, system.Check{Name: "mongo", Pinger: repo})
		checkoutRepo = repo
	}

	if cfg.Backend.Analytics == BackendClickHouse {
		ch, err := click.New(&cfg.ClickHouse)
		if err != nil {
			return nil, fmt.Errorf("clickhouse: %w", err)
		}
		comps.closers = append(comps.closers, ch.Close)
		w := click.NewWriter(ch)
		if err := w.EnsureTables(ctx); err != nil {
			return nil, err
		}
		comps.checks = append(comps.checks, system.Check{Name: "clickhouse", Pinger: ch})
		analytics = w
	}

	if cfg.Backend.Events == BackendKafka {
		p := kafka.NewProducer(&cfg.Kafka)
		comps.closers = append(comps.closers, p.Close)
		broker = p
	}

	dispatcher, err := calcUsecase.NewDispatcher(validator)
	if err != nil {
		return nil, err
	}
	orchestrator, err := checkoutUsecase.NewOrchestrator(stock, payment)
	if err != nil {
		return nil, err
	}
	comps.calcUC = calcUsecase.New(dispatcher, opRepo, broker, analytics, log)
	comps.checkoutUC = checkoutUsecase.New(orchestrator, checkoutRepo, broker, analytics, log)

	if cfg.Backend.Events == BackendKafka && cfg.Backend.Analytics != BackendNone {
		comps.consumer = kafka.NewConsumer(&cfg.Kafka, comps.calcUC, comps.checkoutUC, log)
		comps.closers = append(comps.closers, comps.consumer.Close)
	}
	return comps, nil
}

func buildValidator(ctx context.Context, cn *connections, log *slog.Logger) (ports.OperationValidator, error) {
	if cn.cfg.Backend.Validator != BackendRedis {
		return memory.NewAllowList(cn.cfg.Calculator.AllowedOperations...), nil
	}
	rdb, err := cn.redis()
	if err != nil {
		return nil, err
	}
	policy := redis.NewOperationPolicy(rdb, cn.cfg.Redis.PolicyKey, cn.cfg.Redis.Timeout, log)
	if err := policy.Allow(ctx, cn.cfg.Calculator.AllowedOperations...); err != nil {
		return nil, fmt.Errorf("seed operation policy: %w", err)
	}
	return policy, nil
}

func buildStock(ctx context.Context, cn *connections, log *slog.Logger) (ports.StockChecker, error) {
	if cn.cfg.Backend.Stock != BackendRedis {
		return memory.NewInventoryDriver(cn.cfg.Checkout.InitialStock, log)
	}
	rdb, err := cn.redis()
	if err != nil {
		return nil, err
	}
	stock := redis.NewStockChecker(rdb, cn.cfg.Redis.StockKey, cn.cfg.Redis.Timeout, log)
	if cn.cfg.Checkout.SeedStock {
		if err := stock.SetStock(ctx, cn.cfg.Checkout.InitialStock); err != nil {
			return nil, fmt.Errorf("seed stock: %w", err)
		}
	}
	return stock, nil
}

func buildPayment(ctx context.Context, cn *connections, log *slog.Logger) (ports.PaymentProcessor, error) {
	if cn.cfg.Backend.Payment != BackendPostgres {
		return memory.NewPaymentDriver(cn.cfg.Checkout.PaymentsOK, log), nil
	}
	db, err := cn.postgres(ctx)
	if err != nil {
		return nil, err
	}
	return pg.NewPaymentLedger(db, cn.cfg.Checkout.PaymentLimit, cn.cfg.Checkout.PaymentTimeout, log), nil
}
