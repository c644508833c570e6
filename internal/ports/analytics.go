package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"lizzyShop/internal/domain"
)

// IAnalytics — запись событий в хранилище для аналитики (например, ClickHouse).
type IAnalytics interface {
	WriteOperation(ctx context.Context, op domain.Operation) error
	WriteCheckout(ctx context.Context, c domain.Checkout) error
}
