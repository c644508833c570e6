package pg

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"lizzyShop/internal/ports"
)

// Статусы строки в payments.
const (
	PaymentApproved = "approved"
	PaymentDeclined = "declined"
)

var _ ports.PaymentProcessor = (*PaymentLedger)(nil)

// Payment — строка журнала списаний.
type Payment struct {
	TxID      string
	Amount    decimal.Decimal
	Status    string
	CreatedAt time.Time
}

// PaymentLedger реализует ports.PaymentProcessor: каждое списание — строка в payments.
// Суммы выше лимита отклоняются (строка со статусом declined). Ошибка БД — отказ (false).
type PaymentLedger struct {
	db      *DB
	limit   decimal.Decimal
	timeout time.Duration
	log     *slog.Logger
}

// NewPaymentLedger возвращает платёжку с лимитом одного списания.
func NewPaymentLedger(db *DB, limit decimal.Decimal, timeout time.Duration, log *slog.Logger) *PaymentLedger {
	return &PaymentLedger{db: db, limit: limit, timeout: timeout, log: log}
}

// Charge записывает списание и возвращает, одобрено ли оно.
func (l *PaymentLedger) Charge(amount decimal.Decimal) bool {
	if amount.IsNegative() {
		l.log.Debug("payment rejected: negative amount", "amount", amount.String())
		return false
	}
	status := PaymentApproved
	if amount.GreaterThan(l.limit) {
		status = PaymentDeclined
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	txID := uuid.NewString()
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO payments (tx_id, amount, status, created_at) VALUES ($1, $2, $3, $4)`,
		txID, amount, status, time.Now())
	if err != nil {
		l.log.Warn("payment write failed", "tx_id", txID, "amount", amount.String(), "error", err)
		return false
	}
	l.log.Info("payment recorded", "tx_id", txID, "amount", amount.String(), "status", status)
	return status == PaymentApproved
}

// Payments возвращает журнал списаний (последние сначала).
func (l *PaymentLedger) Payments(ctx context.Context) ([]Payment, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT tx_id, amount, status, created_at FROM payments ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []Payment
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.TxID, &p.Amount, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
