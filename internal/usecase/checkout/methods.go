package checkout

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"lizzyShop/internal/domain"
)

// Checkout — запускает оркестратор, пишет попытку в журнал и публикует событие.
// Отказ склада или оплаты — это запись с Success=false, а не ошибка.
func (u *UseCase) Checkout(ctx context.Context, itemCount int, unitPrice decimal.Decimal) (*domain.Checkout, error) {
	outcome, err := u.orchestrator.Run(itemCount, unitPrice)
	if err != nil {
		u.log.Debug("checkout input rejected", "item_count", itemCount, "unit_price", unitPrice.String(), "error", err)
		return nil, err
	}

	c := domain.Checkout{
		ID:        uuid.NewString(),
		ItemCount: itemCount,
		UnitPrice: unitPrice,
		Total:     outcome.Total,
		State:     outcome.State,
		Success:   outcome.Success(),
		Timestamp: time.Now(),
	}
	key := checkoutKey(itemCount, unitPrice)

	switch {
	case outcome.State == domain.CheckoutRejected:
		u.log.Info("checkout rejected: insufficient stock", "id", c.ID, "key", key)
	case !outcome.Paid:
		u.log.Info("checkout failed: payment declined", "id", c.ID, "key", key, "total", c.Total.String())
	default:
		u.log.Info("checkout completed", "id", c.ID, "key", key, "total", c.Total.String())
	}

	if err := u.repo.SaveCheckout(ctx, c); err != nil {
		return nil, err
	}

	value, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}

	if err := u.broker.Send(ctx, []byte(domain.EventKey(domain.EventCheckout, c.ID)), value); err != nil {
		u.log.Warn("broker send", "id", c.ID, "error", err)
	} else {
		u.log.Info("checkout published", "id", c.ID, "success", c.Success)
	}

	return &c, nil
}

// History — история попыток оформления (обвязка над журналом).
func (u *UseCase) History(ctx context.Context) ([]domain.Checkout, error) {
	return u.repo.GetCheckouts(ctx)
}

// HandleCheckoutEvent вызывается консьюмером при получении события checkout (часть ICheckoutUseCase).
func (u *UseCase) HandleCheckoutEvent(ctx context.Context, c domain.Checkout) error {
	if err := u.analytics.WriteCheckout(ctx, c); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("checkout stored to click", "id", c.ID, "state", c.State, "total", c.Total.String())

	return nil
}
