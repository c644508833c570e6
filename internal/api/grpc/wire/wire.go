// Package wire — общие куски gRPC-сервисов: чтение полей из structpb и перевод доменных ошибок в gRPC-коды.
package wire

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"lizzyShop/internal/domain"
)

// Int читает целое поле. Дробное, отсутствующее или вне диапазона int32 — InvalidArgument.
func Int(s *structpb.Struct, name string) (int, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "%s is required", name)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be a number", name)
	}
	f := n.NumberValue
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be a 32-bit integer (provided: %v)", name, f)
	}
	return int(f), nil
}

// String читает строковое поле; отсутствие поля — пустая строка.
func String(s *structpb.Struct, name string) string {
	return s.GetFields()[name].GetStringValue()
}

// Decimal читает денежное поле: строкой ("9.99") или числом, в границах domain.CheckPrice.
func Decimal(s *structpb.Struct, name string) (decimal.Decimal, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "%s is required", name)
	}
	var d decimal.Decimal
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		var err error
		if d, err = decimal.NewFromString(k.StringValue); err != nil {
			return decimal.Zero, status.Errorf(codes.InvalidArgument, "%s: %v", name, err)
		}
	case *structpb.Value_NumberValue:
		d = decimal.NewFromFloat(k.NumberValue)
	default:
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "%s must be a string or a number", name)
	}
	if err := domain.CheckPrice(d); err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "%s: %v", name, err)
	}
	return d, nil
}

// NewStruct собирает ответ. Ошибка structpb тут означает баг в коде сервиса, поэтому Internal.
func NewStruct(fields map[string]any) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "build response: %v", err)
	}
	return s, nil
}

// Error переводит ошибку use case в gRPC-статус.
func Error(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, domain.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrDivisionByZero):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, fmt.Sprint(err))
	}
}
