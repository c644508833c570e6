package ports

//go:generate mockgen -source=capabilities.go -destination=../mocks/capabilities_mock.go -package=mocks

import (
	"reflect"

	"github.com/shopspring/decimal"
)

// OperationValidator — внешняя политика: разрешена ли нормализованная операция.
// Для пустого имени обязана вернуть false, а не падать.
type OperationValidator interface {
	IsValidOperation(name string) bool
}

// StockChecker — внешняя проверка склада: можно ли отгрузить quantity штук.
// Ядро вызывает его только с quantity > 0.
type StockChecker interface {
	IsAvailable(quantity int) bool
}

// PaymentProcessor — внешняя платёжка: прошло ли списание amount.
// Ядро вызывает его только с amount >= 0.
type PaymentProcessor interface {
	Charge(amount decimal.Decimal) bool
}

// ValidatorFunc позволяет использовать обычную функцию как OperationValidator.
type ValidatorFunc func(name string) bool

// IsValidOperation реализует OperationValidator.
func (f ValidatorFunc) IsValidOperation(name string) bool { return f(name) }

// StockCheckerFunc позволяет использовать обычную функцию как StockChecker.
type StockCheckerFunc func(quantity int) bool

// IsAvailable реализует StockChecker.
func (f StockCheckerFunc) IsAvailable(quantity int) bool { return f(quantity) }

// PaymentProcessorFunc позволяет использовать обычную функцию как PaymentProcessor.
type PaymentProcessorFunc func(amount decimal.Decimal) bool

// Charge реализует PaymentProcessor.
func (f PaymentProcessorFunc) Charge(amount decimal.Decimal) bool { return f(amount) }

// Missing сообщает, что зависимость не передана: nil-интерфейс или типизированный nil
// (указатель, функция, map, канал).
func Missing(capability any) bool {
	if capability == nil {
		return true
	}
	v := reflect.ValueOf(capability)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}
