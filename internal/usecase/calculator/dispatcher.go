package calculator

import (
	"fmt"
	"strings"

	"lizzyShop/internal/domain"
	"lizzyShop/internal/ports"
)

// Dispatcher — ядро калькулятора: спрашивает политику и выполняет одну из четырёх операций.
// Состояния нет, кроме ссылки на валидатор, заданной при создании.
type Dispatcher struct {
	validator ports.OperationValidator
}

// NewDispatcher создаёт диспетчер. Без валидатора — ErrInvalidArgument.
func NewDispatcher(validator ports.OperationValidator) (*Dispatcher, error) {
	if ports.Missing(validator) {
		return nil, fmt.Errorf("%w: operation validator is required", domain.ErrInvalidArgument)
	}
	return &Dispatcher{validator: validator}, nil
}

// Execute нормализует имя операции, проверяет его политикой и считает результат.
// Отказ валидатора важнее собственного списка операций диспетчера.
func (d *Dispatcher) Execute(a, b int, operation string) (float64, error) {
	if strings.TrimSpace(operation) == "" {
		return 0, fmt.Errorf("%w: operation name missing", domain.ErrInvalidArgument)
	}
	name := domain.NormalizeOperation(operation)

	if !d.validator.IsValidOperation(name) {
		return 0, fmt.Errorf("%w: operation not permitted: %q", domain.ErrInvalidArgument, operation)
	}

	for _, n := range []int{a, b} {
		if err := domain.CheckOperand(n); err != nil {
			return 0, err
		}
	}

	// Операнды в int32, поэтому в int64 ни одна операция не переполняется.
	x, y := int64(a), int64(b)
	switch name {
	case domain.OpAdd:
		return float64(x + y), nil
	case domain.OpSubtract:
		return float64(x - y), nil
	case domain.OpMultiply:
		return float64(x * y), nil
	case domain.OpDivide:
		if y == 0 {
			return 0, fmt.Errorf("%w: cannot divide %d by zero", domain.ErrDivisionByZero, a)
		}
		return float64(x) / float64(y), nil
	default:
		// Достижимо только с политикой шире, чем набор операций диспетчера.
		return 0, fmt.Errorf("%w: unsupported operation: %q", domain.ErrInvalidArgument, operation)
	}
}
