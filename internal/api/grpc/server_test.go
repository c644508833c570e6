package grpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"lizzyShop/internal/api/grpc/calculator"
	"lizzyShop/internal/api/grpc/checkout"
	"lizzyShop/internal/domain"
	"lizzyShop/internal/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// dial поднимает сервер на bufconn и возвращает клиентское соединение.
func dial(t *testing.T, calcUC *mocks.MockICalculatorUseCase, checkoutUC *mocks.MockICheckoutUseCase) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := NewServer("bufnet", calcUC, checkoutUC, newTestLogger())
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(func() { _ = srv.Stop(context.Background()) })

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func TestServer_Calculate(t *testing.T) {
	ctrl := gomock.NewController(t)
	calcUC := mocks.NewMockICalculatorUseCase(ctrl)
	conn := dial(t, calcUC, mocks.NewMockICheckoutUseCase(ctrl))
	ctx := context.Background()

	calcUC.EXPECT().Calculate(gomock.Any(), 10, 4, "DIVIDE").
		Return(&domain.Operation{Number1: 10, Number2: 4, Operation: domain.OpDivide, Result: 2.5}, nil)

	out := new(structpb.Struct)
	err := conn.Invoke(ctx, calculator.CalculateMethod, mustStruct(t, map[string]any{"number1": 10, "number2": 4, "operation": "DIVIDE"}), out)
	require.NoError(t, err)
	assert.Equal(t, 2.5, out.GetFields()["result"].GetNumberValue())
	assert.Equal(t, domain.OpDivide, out.GetFields()["operation"].GetStringValue())
}

func TestServer_Calculate_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"not permitted", fmt.Errorf("%w: operation not permitted: %q", domain.ErrInvalidArgument, "mod"), codes.InvalidArgument},
		{"division by zero", fmt.Errorf("%w: cannot divide 1 by zero", domain.ErrDivisionByZero), codes.FailedPrecondition},
		{"internal", errors.New("pg down"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			calcUC := mocks.NewMockICalculatorUseCase(ctrl)
			conn := dial(t, calcUC, mocks.NewMockICheckoutUseCase(ctrl))

			calcUC.EXPECT().Calculate(gomock.Any(), 1, 0, "divide").Return(nil, tt.err)

			err := conn.Invoke(context.Background(), calculator.CalculateMethod,
				mustStruct(t, map[string]any{"number1": 1, "number2": 0, "operation": "divide"}), new(structpb.Struct))
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}

func TestServer_Calculate_BadFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := dial(t, mocks.NewMockICalculatorUseCase(ctrl), mocks.NewMockICheckoutUseCase(ctrl))

	err := conn.Invoke(context.Background(), calculator.CalculateMethod,
		mustStruct(t, map[string]any{"number1": 1.5, "number2": 1, "operation": "add"}), new(structpb.Struct))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	calcUC := mocks.NewMockICalculatorUseCase(ctrl)
	conn := dial(t, calcUC, mocks.NewMockICheckoutUseCase(ctrl))

	calcUC.EXPECT().History(gomock.Any()).Return([]domain.Operation{
		{ID: 1, Number1: 2, Number2: 3, Operation: domain.OpAdd, Result: 5},
	}, nil)

	out := new(structpb.Struct)
	require.NoError(t, conn.Invoke(context.Background(), calculator.HistoryMethod, &structpb.Struct{}, out))
	items := out.GetFields()["items"].GetListValue().GetValues()
	require.Len(t, items, 1)
	assert.Equal(t, float64(5), items[0].GetStructValue().GetFields()["result"].GetNumberValue())
}

func TestServer_Checkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	checkoutUC := mocks.NewMockICheckoutUseCase(ctrl)
	conn := dial(t, mocks.NewMockICalculatorUseCase(ctrl), checkoutUC)

	checkoutUC.EXPECT().Checkout(gomock.Any(), 3, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, price decimal.Decimal) (*domain.Checkout, error) {
			assert.True(t, price.Equal(decimal.RequireFromString("9.99")))
			return &domain.Checkout{ID: "c-1", Total: decimal.RequireFromString("29.97"), State: domain.CheckoutSettled, Success: true}, nil
		})

	out := new(structpb.Struct)
	err := conn.Invoke(context.Background(), checkout.CheckoutMethod,
		mustStruct(t, map[string]any{"item_count": 3, "unit_price": "9.99"}), out)
	require.NoError(t, err)

	f := out.GetFields()
	assert.True(t, f["success"].GetBoolValue())
	assert.Equal(t, "settled", f["state"].GetStringValue())
	assert.Equal(t, "29.97", f["total"].GetStringValue())
	assert.Equal(t, "c-1", f["id"].GetStringValue())
}

func TestServer_Checkout_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	checkoutUC := mocks.NewMockICheckoutUseCase(ctrl)
	conn := dial(t, mocks.NewMockICalculatorUseCase(ctrl), checkoutUC)

	checkoutUC.EXPECT().Checkout(gomock.Any(), 0, gomock.Any()).
		Return(nil, fmt.Errorf("%w: item count must be positive (provided: 0)", domain.ErrInvalidArgument))

	err := conn.Invoke(context.Background(), checkout.CheckoutMethod,
		mustStruct(t, map[string]any{"item_count": 0, "unit_price": "1"}), new(structpb.Struct))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "item count must be positive")
}
