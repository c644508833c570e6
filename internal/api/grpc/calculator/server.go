package calculator

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"lizzyShop/internal/api/grpc/wire"
	"lizzyShop/internal/ports"
)

var _ CalculatorServiceServer = (*Server)(nil)

// Server реализует gRPC CalculatorService, вызывает use case калькулятора.
type Server struct {
	uc  ports.ICalculatorUseCase
	log *slog.Logger
}

// New создаёт gRPC-сервер калькулятора.
func New(uc ports.ICalculatorUseCase, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{uc: uc, log: log}
}

// Calculate вызывает use case и возвращает результат или gRPC-ошибку.
func (s *Server) Calculate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	number1, err := wire.Int(req, "number1")
	if err != nil {
		return nil, err
	}
	number2, err := wire.Int(req, "number2")
	if err != nil {
		return nil, err
	}
	op, err := s.uc.Calculate(ctx, number1, number2, wire.String(req, "operation"))
	if err != nil {
		s.log.Debug("calculate failed", "error", err)
		return nil, wire.Error(err)
	}
	return wire.NewStruct(map[string]any{
		"operation": op.Operation,
		"result":    op.Result,
	})
}

// History возвращает историю операций из use case.
func (s *Server) History(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	list, err := s.uc.History(ctx)
	if err != nil {
		s.log.Error("history failed", "error", err)
		return nil, wire.Error(err)
	}
	items := make([]any, len(list))
	for i, op := range list {
		items[i] = map[string]any{
			"id":        op.ID,
			"number1":   op.Number1,
			"number2":   op.Number2,
			"operation": op.Operation,
			"result":    op.Result,
			"timestamp": op.Timestamp.Format(time.RFC3339Nano),
		}
	}
	return wire.NewStruct(map[string]any{"items": items})
}
