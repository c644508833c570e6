package checkout

import (
	"log/slog"
	"strconv"

	"github.com/shopspring/decimal"

	"lizzyShop/internal/ports"
)

// checkoutKey формирует читаемый ключ попытки для брокера, например "3 x 9.99".
func checkoutKey(itemCount int, unitPrice decimal.Decimal) string {
	return strconv.Itoa(itemCount) + " x " + unitPrice.String()
}

// UseCase — оформление заказа поверх Orchestrator: журнал, события, аналитика.
type UseCase struct {
	orchestrator *Orchestrator
	repo         ports.CheckoutRepository
	broker       ports.IProducer
	analytics    ports.IAnalytics
	log          *slog.Logger
}

// New создаёт юзкейс оформления заказа.
func New(orchestrator *Orchestrator, repo ports.CheckoutRepository, broker ports.IProducer, analytics ports.IAnalytics, log *slog.Logger) *UseCase {
	return &UseCase{orchestrator: orchestrator, repo: repo, broker: broker, analytics: analytics, log: log}
}
