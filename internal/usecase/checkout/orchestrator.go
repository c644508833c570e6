package checkout

import (
	"fmt"

	"github.com/shopspring/decimal"

	"lizzyShop/internal/domain"
	"lizzyShop/internal/ports"
)

// Orchestrator — ядро оформления заказа: склад, сумма, оплата. Строго в этом порядке.
type Orchestrator struct {
	stock   ports.StockChecker
	payment ports.PaymentProcessor
}

// NewOrchestrator создаёт оркестратор. Каждая зависимость проверяется отдельно,
// ошибка называет ту, которой нет.
func NewOrchestrator(stock ports.StockChecker, payment ports.PaymentProcessor) (*Orchestrator, error) {
	if ports.Missing(stock) {
		return nil, fmt.Errorf("%w: stock checker is required", domain.ErrInvalidArgument)
	}
	if ports.Missing(payment) {
		return nil, fmt.Errorf("%w: payment processor is required", domain.ErrInvalidArgument)
	}
	return &Orchestrator{stock: stock, payment: payment}, nil
}

// Checkout возвращает true, только если склад подтвердил наличие и оплата прошла.
// Отказ склада или платёжки — false без ошибки; ошибка только на некорректный ввод.
func (o *Orchestrator) Checkout(itemCount int, unitPrice decimal.Decimal) (bool, error) {
	outcome, err := o.Run(itemCount, unitPrice)
	if err != nil {
		return false, err
	}
	return outcome.Success(), nil
}

// Run — то же, что Checkout, но с терминальным состоянием и суммой.
// Оплата никогда не запускается без положительного ответа склада в этом же вызове.
func (o *Orchestrator) Run(itemCount int, unitPrice decimal.Decimal) (domain.CheckoutOutcome, error) {
	if itemCount <= 0 {
		return domain.CheckoutOutcome{}, fmt.Errorf("%w: item count must be positive (provided: %d)", domain.ErrInvalidArgument, itemCount)
	}
	if unitPrice.IsNegative() {
		return domain.CheckoutOutcome{}, fmt.Errorf("%w: price cannot be negative (provided: %s)", domain.ErrInvalidArgument, unitPrice)
	}

	if !o.stock.IsAvailable(itemCount) {
		return domain.CheckoutOutcome{State: domain.CheckoutRejected, Total: decimal.Zero}, nil
	}

	total := unitPrice.Mul(decimal.NewFromInt(int64(itemCount)))

	paid := o.payment.Charge(total)
	return domain.CheckoutOutcome{State: domain.CheckoutSettled, Total: total, Paid: paid}, nil
}
