package checkout

import (
	"context"
	"log/slog"

	"google.golang.org/protobuf/types/known/structpb"

	"lizzyShop/internal/api/grpc/wire"
	"lizzyShop/internal/ports"
)

var _ CheckoutServiceServer = (*Server)(nil)

// Server реализует gRPC CheckoutService.
type Server struct {
	uc  ports.ICheckoutUseCase
	log *slog.Logger
}

// New создаёт gRPC-сервер оформления заказа.
func New(uc ports.ICheckoutUseCase, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{uc: uc, log: log}
}

// Checkout оформляет заказ. Отказ склада или платежа — обычный ответ с success=false.
func (s *Server) Checkout(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	itemCount, err := wire.Int(req, "item_count")
	if err != nil {
		return nil, err
	}
	unitPrice, err := wire.Decimal(req, "unit_price")
	if err != nil {
		return nil, err
	}
	rec, err := s.uc.Checkout(ctx, itemCount, unitPrice)
	if err != nil {
		s.log.Debug("checkout failed", "error", err)
		return nil, wire.Error(err)
	}
	return wire.NewStruct(map[string]any{
		"id":      rec.ID,
		"success": rec.Success,
		"state":   string(rec.State),
		"total":   rec.Total.String(),
	})
}
