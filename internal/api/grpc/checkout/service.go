package checkout

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName — полное имя gRPC-сервиса оформления заказа.
const ServiceName = "lizzyshop.v1.CheckoutService"

// CheckoutMethod — полное имя метода для клиентов (conn.Invoke).
const CheckoutMethod = "/" + ServiceName + "/Checkout"

// CheckoutServiceServer — серверная сторона сервиса.
// Checkout {item_count, unit_price} -> {id, success, state, total}; unit_price и total — строки.
type CheckoutServiceServer interface {
	Checkout(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// ServiceDesc описывает сервис для grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CheckoutServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Checkout", Handler: checkoutHandler},
	},
	Streams: []grpc.StreamDesc{},
}

// Register регистрирует реализацию на gRPC-сервере.
func Register(s grpc.ServiceRegistrar, srv CheckoutServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func checkoutHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CheckoutServiceServer).Checkout(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CheckoutMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CheckoutServiceServer).Checkout(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
