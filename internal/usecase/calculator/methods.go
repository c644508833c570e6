package calculator

import (
	"context"
	"encoding/json"
	"time"

	"lizzyShop/internal/domain"
)

// Calculate — считает через Dispatcher, сохраняет операцию в журнал и публикует событие.
// Ошибки диспетчера возвращаются как есть, чтобы вызывающий различал их через errors.Is.
func (u *UseCase) Calculate(ctx context.Context, number1, number2 int, operation string) (*domain.Operation, error) {
	result, err := u.dispatcher.Execute(number1, number2, operation)
	if err != nil {
		u.log.Debug("operation rejected", "operation", operation, "error", err)
		return nil, err
	}

	op := domain.Operation{
		Number1:   number1,
		Number2:   number2,
		Operation: domain.NormalizeOperation(operation),
		Result:    result,
		Timestamp: time.Now(),
	}
	key := operationKey(number1, number2, op.Operation)

	if err := u.repo.SaveOperation(ctx, op); err != nil {
		return nil, err
	}
	u.log.Info("operation saved", "key", key, "result", result)

	value, err := json.Marshal(op)
	if err != nil {
		return nil, err
	}

	if err := u.broker.Send(ctx, []byte(domain.EventKey(domain.EventOperation, key)), value); err != nil {
		u.log.Warn("broker send", "key", key, "error", err)
	} else {
		u.log.Info("operation published", "key", key, "result", result)
	}

	return &op, nil
}

// History — история операций (обвязка над журналом).
func (u *UseCase) History(ctx context.Context) ([]domain.Operation, error) {
	return u.repo.GetHistory(ctx)
}

// HandleOperationEvent вызывается консьюмером при получении события операции (часть ICalculatorUseCase).
func (u *UseCase) HandleOperationEvent(ctx context.Context, op domain.Operation) error {
	if err := u.analytics.WriteOperation(ctx, op); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("operation stored to click", "number1", op.Number1, "operation", op.Operation, "number2", op.Number2, "result", op.Result)

	return nil
}
