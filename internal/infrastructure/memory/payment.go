package memory

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"lizzyShop/internal/ports"
)

var _ ports.PaymentProcessor = (*PaymentDriver)(nil)

// PaymentDriver — платёжка в памяти: успех задаётся флагом, отрицательные суммы отклоняются.
type PaymentDriver struct {
	mu            sync.Mutex
	shouldSucceed bool
	lastAmount    decimal.Decimal
	lastTxID      string
	calls         int
	log           *slog.Logger
}

// NewPaymentDriver создаёт платёжку, которая одобряет (shouldSucceed) или отклоняет списания.
func NewPaymentDriver(shouldSucceed bool, log *slog.Logger) *PaymentDriver {
	if log == nil {
		log = slog.Default()
	}
	return &PaymentDriver{shouldSucceed: shouldSucceed, log: log}
}

// Charge реализует ports.PaymentProcessor.
func (d *PaymentDriver) Charge(amount decimal.Decimal) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.calls++
	d.lastAmount = amount
	if amount.IsNegative() {
		d.log.Debug("payment rejected: negative amount", "amount", amount.String())
		return false
	}
	if !d.shouldSucceed {
		d.log.Debug("payment declined", "amount", amount.String())
		return false
	}
	d.lastTxID = "TXN-" + uuid.NewString()
	d.log.Debug("payment processed", "amount", amount.String(), "tx_id", d.lastTxID)
	return true
}

// SetShouldSucceed переключает исход следующих списаний.
func (d *PaymentDriver) SetShouldSucceed(ok bool) {
	d.mu.Lock()
	d.shouldSucceed = ok
	d.mu.Unlock()
}

// LastAmount — сумма последнего списания.
func (d *PaymentDriver) LastAmount() decimal.Decimal {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastAmount
}

// LastTransactionID — id последнего успешного списания ("" если их не было).
func (d *PaymentDriver) LastTransactionID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastTxID
}

// Calls — сколько раз вызывали Charge.
func (d *PaymentDriver) Calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

// Reset сбрасывает счётчики, платёжка снова одобряет.
func (d *PaymentDriver) Reset() {
	d.mu.Lock()
	d.calls, d.lastAmount, d.lastTxID, d.shouldSucceed = 0, decimal.Zero, "", true
	d.mu.Unlock()
}
