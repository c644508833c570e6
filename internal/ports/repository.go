package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lizzyShop/internal/domain"
)

// OperationRepository — журнал выполненных операций калькулятора.
type OperationRepository interface {
	SaveOperation(ctx context.Context, op domain.Operation) error
	GetHistory(ctx context.Context) ([]domain.Operation, error)
	Ping(ctx context.Context) error
}

// CheckoutRepository — журнал попыток оформления заказа.
type CheckoutRepository interface {
	SaveCheckout(ctx context.Context, c domain.Checkout) error
	GetCheckouts(ctx context.Context) ([]domain.Checkout, error)
	Ping(ctx context.Context) error
}
