package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Имена арифметических операций (после нормализации).
const (
	OpAdd      = "add"
	OpSubtract = "subtract"
	OpMultiply = "multiply"
	OpDivide   = "divide"
)

// Operations — все операции, которые умеет диспетчер.
var Operations = []string{OpAdd, OpSubtract, OpMultiply, OpDivide}

// NormalizeOperation обрезает пробелы и приводит имя к нижнему регистру.
func NormalizeOperation(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CheckOperand проверяет, что операнд в диапазоне int32: в нём результат любой операции
// помещается в int64 без переполнения.
func CheckOperand(n int) error {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return fmt.Errorf("%w: operand out of int32 range (provided: %d)", ErrInvalidArgument, n)
	}
	return nil
}

// Operation — запись об одной выполненной операции калькулятора.
type Operation struct {
	ID        int       `json:"id"`
	Number1   int       `json:"number1"`
	Number2   int       `json:"number2"`
	Operation string    `json:"operation"`
	Result    float64   `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}
