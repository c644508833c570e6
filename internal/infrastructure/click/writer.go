package click

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"lizzyShop/internal/domain"
	"lizzyShop/internal/ports"
)

const (
	operationsTable = "operations_analytics"
	checkoutsTable  = "checkouts_analytics"
)

var _ ports.IAnalytics = (*Writer)(nil)

// Writer пишет операции и попытки оформления в ClickHouse в формате, удобном для аналитики.
type Writer struct {
	db *Client
}

// NewWriter создаёт писатель аналитики.
func NewWriter(db *Client) *Writer {
	return &Writer{db: db}
}

// EnsureTables создаёт таблицы аналитики, если их ещё нет. Вызови один раз при старте приложения.
func (w *Writer) EnsureTables(ctx context.Context) error {
	queries := []string{
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			number1 Int64,
			number2 Int64,
			operation LowCardinality(String),
			result Float64,
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, operation)
		PARTITION BY toYYYYMM(created_at)`, w.db.table(operationsTable)),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id String,
			item_count Int64,
			unit_price Decimal(18, 4),
			total Decimal(18, 4),
			state LowCardinality(String),
			success Bool,
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, state)
		PARTITION BY toYYYYMM(created_at)`, w.db.table(checkoutsTable)),
	}
	for _, q := range queries {
		if _, err := w.db.DB().ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure analytics tables: %w", err)
		}
	}
	return nil
}

// WriteOperation пишет одну операцию.
func (w *Writer) WriteOperation(ctx context.Context, op domain.Operation) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (number1, number2, operation, result, created_at) VALUES (?, ?, ?, ?, ?)",
		w.db.table(operationsTable),
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		int64(op.Number1), int64(op.Number2), op.Operation, op.Result, timestampOrNow(op.Timestamp))
	if err != nil {
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}

// WriteCheckout пишет одну попытку оформления. Суммы передаём строкой, ClickHouse сам приводит к Decimal.
func (w *Writer) WriteCheckout(ctx context.Context, c domain.Checkout) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (id, item_count, unit_price, total, state, success, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		w.db.table(checkoutsTable),
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		c.ID, int64(c.ItemCount), c.UnitPrice.String(), c.Total.String(), string(c.State), c.Success, timestampOrNow(c.Timestamp))
	if err != nil {
		return fmt.Errorf("insert checkout: %w", err)
	}
	return nil
}

// OperationCount — число операций одного типа.
type OperationCount struct {
	Operation string
	Count     uint64
}

// OperationCounts возвращает количество операций по типам.
func (w *Writer) OperationCounts(ctx context.Context) ([]OperationCount, error) {
	query := fmt.Sprintf("SELECT operation, count() FROM %s GROUP BY operation ORDER BY operation", w.db.table(operationsTable))
	rows, err := w.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("operation counts: %w", err)
	}
	defer rows.Close()
	var out []OperationCount
	for rows.Next() {
		var oc OperationCount
		if err := rows.Scan(&oc.Operation, &oc.Count); err != nil {
			return nil, err
		}
		out = append(out, oc)
	}
	return out, rows.Err()
}

// Revenue возвращает сумму оплаченных заказов.
func (w *Writer) Revenue(ctx context.Context) (decimal.Decimal, error) {
	query := fmt.Sprintf("SELECT toString(sum(total)) FROM %s WHERE success", w.db.table(checkoutsTable))
	var s string
	if err := w.db.DB().QueryRowContext(ctx, query).Scan(&s); err != nil {
		return decimal.Zero, fmt.Errorf("revenue: %w", err)
	}
	return decimal.NewFromString(s)
}

func timestampOrNow(ts time.Time) time.Time {
	if ts.IsZero() {
		return time.Now().UTC()
	}
	return ts
}
