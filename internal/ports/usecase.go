package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"lizzyShop/internal/domain"
)

// ICalculatorUseCase — контракт бизнес-логики калькулятора (расчёт, история, обработка событий из Kafka).
type ICalculatorUseCase interface {
	Calculate(ctx context.Context, number1, number2 int, operation string) (*domain.Operation, error)
	History(ctx context.Context) ([]domain.Operation, error)
	HandleOperationEvent(ctx context.Context, op domain.Operation) error
}

// ICheckoutUseCase — контракт оформления заказа (checkout, история, обработка событий из Kafka).
type ICheckoutUseCase interface {
	Checkout(ctx context.Context, itemCount int, unitPrice decimal.Decimal) (*domain.Checkout, error)
	History(ctx context.Context) ([]domain.Checkout, error)
	HandleCheckoutEvent(ctx context.Context, c domain.Checkout) error
}
