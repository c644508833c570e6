package calculator

import (
	"log/slog"
	"strconv"

	"lizzyShop/internal/ports"
)

// operationKey формирует читаемый ключ операции для брокера, например "1 add 1".
func operationKey(number1, number2 int, operation string) string {
	return strconv.Itoa(number1) + " " + operation + " " + strconv.Itoa(number2)
}

// UseCase — бизнес-логика калькулятора поверх Dispatcher: журнал, события, аналитика.
type UseCase struct {
	dispatcher *Dispatcher
	repo       ports.OperationRepository
	broker     ports.IProducer
	analytics  ports.IAnalytics
	log        *slog.Logger
}

// New создаёт юзкейс калькулятора.
func New(dispatcher *Dispatcher, repo ports.OperationRepository, broker ports.IProducer, analytics ports.IAnalytics, log *slog.Logger) *UseCase {
	return &UseCase{dispatcher: dispatcher, repo: repo, broker: broker, analytics: analytics, log: log}
}
