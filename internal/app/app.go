package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	apigrpc "lizzyShop/internal/api/grpc"
	apihttp "lizzyShop/internal/api/http"
	"lizzyShop/internal/api/http/controllers/calculator"
	"lizzyShop/internal/api/http/controllers/checkout"
	"lizzyShop/internal/api/http/controllers/system"
	"lizzyShop/internal/pkg/logger"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (инфраструктура подключается в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run собирает зависимости по конфигу, запускает gRPC, HTTP и консьюмера событий (блокирующий вызов).
// Останавливается по SIGINT/SIGTERM.
func (a *App) Run() error {
	log := logger.NewWithFile(a.cfg.LogFile, a.cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	comps, err := build(ctx, a.cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := comps.close(); err != nil {
			log.Warn("close resources", "error", err)
		}
	}()

	grpcSrv := apigrpc.NewServer(a.cfg.Grpc.Addr(), comps.calcUC, comps.checkoutUC, log)
	go func() {
		if err := grpcSrv.Start(); err != nil {
			log.Error("grpc server failed", "error", err)
			stop()
		}
	}()

	if comps.consumer != nil {
		go func() {
			if err := comps.consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("event consumer failed", "error", err)
			}
		}()
	}

	srv := apihttp.NewServer(a.cfg.Server, log)
	srv.AddController(
		system.New(log, comps.checks...),
		calculator.New(comps.calcUC, log),
		checkout.New(comps.checkoutUC, log))

	log.Info("application started",
		"http", a.cfg.Server.Host+":"+a.cfg.Server.Port,
		"grpc", a.cfg.Grpc.Addr(),
		"backends", fmt.Sprintf("%+v", a.cfg.Backend))

	httpErr := srv.Start(ctx)
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return errors.Join(httpErr, grpcSrv.Stop(shutdownCtx))
}
