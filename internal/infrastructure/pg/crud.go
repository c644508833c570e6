package pg

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lizzyShop/internal/domain"
	"lizzyShop/internal/ports"
)

// historyLimit — сколько последних операций отдаёт GetHistory.
const historyLimit = 100

var _ ports.OperationRepository = (*OperationRepo)(nil)

// OperationRepo — журнал операций калькулятора в таблице operations.
type OperationRepo struct {
	db  *DB
	log *slog.Logger
}

// NewOperationRepo возвращает журнал операций.
func NewOperationRepo(db *DB, log *slog.Logger) *OperationRepo {
	return &OperationRepo{db: db, log: log}
}

// SaveOperation пишет операцию. Без времени берём время БД.
func (r *OperationRepo) SaveOperation(ctx context.Context, op domain.Operation) error {
	var ts any
	if !op.Timestamp.IsZero() {
		ts = op.Timestamp
	}
	var id int
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO operations (number1, number2, operation, result, created_at)
		 VALUES ($1, $2, $3, $4, COALESCE($5, NOW()))
		 RETURNING id`,
		int64(op.Number1), int64(op.Number2), op.Operation, op.Result, ts).Scan(&id)
	if err != nil {
		return fmt.Errorf("save operation: %w", err)
	}
	r.log.Debug("operation saved", "id", id, "operation", op.Operation)
	return nil
}

// GetHistory возвращает последние historyLimit операций, новые сначала.
func (r *OperationRepo) GetHistory(ctx context.Context) ([]domain.Operation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, number1, number2, operation, result, created_at
		 FROM operations ORDER BY created_at DESC, id DESC LIMIT $1`, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("operation history: %w", err)
	}
	defer rows.Close()

	list := make([]domain.Operation, 0)
	for rows.Next() {
		var (
			op      domain.Operation
			n1, n2  int64
			created time.Time
		)
		if err := rows.Scan(&op.ID, &n1, &n2, &op.Operation, &op.Result, &created); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		op.Number1, op.Number2, op.Timestamp = int(n1), int(n2), created
		list = append(list, op)
	}
	return list, rows.Err()
}

// Ping проверяет доступность БД (readiness).
func (r *OperationRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
