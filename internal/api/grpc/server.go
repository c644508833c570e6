package grpc

import (
	"context"
	"log/slog"
	"net"

	"google.golang.org/grpc"

	"lizzyShop/internal/api/grpc/calculator"
	"lizzyShop/internal/api/grpc/checkout"
	"lizzyShop/internal/api/grpc/interceptors"
	"lizzyShop/internal/ports"
)

// Config — настройки gRPC-сервера. Переменные: SHOP_GRPC_HOST, SHOP_GRPC_PORT.
type Config struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port string `envconfig:"PORT" default:"9090"`
}

// Addr возвращает "host:port".
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Server — gRPC-сервер: регистрирует сервисы и слушает порт.
type Server struct {
	grpc *grpc.Server
	addr string
}

// NewServer создаёт gRPC-сервер и регистрирует CalculatorService и CheckoutService.
// Интерцепторы: recovery, затем логирование метода, latency_ms и grpc_code.
func NewServer(addr string, calcUC ports.ICalculatorUseCase, checkoutUC ports.ICheckoutUseCase, log *slog.Logger) *Server {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(
		interceptors.RecoveryUnaryInterceptor(log),
		interceptors.LoggingUnaryInterceptor(log),
	))
	calculator.Register(s, calculator.New(calcUC, log))
	checkout.Register(s, checkout.New(checkoutUC, log))
	return &Server{grpc: s, addr: addr}
}

// Start слушает addr и принимает соединения (блокируется). Остановка через Stop().
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(lis)
}

// Serve принимает соединения на готовом listener (блокируется).
func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// Stop останавливает сервер (graceful), по истечении ctx — принудительно.
func (s *Server) Stop(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.grpc.Stop()
		return ctx.Err()
	}
}
