package checkout

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"lizzyShop/internal/domain"
)

// CheckoutRequest — запрос на оформление (для POST /api/v1/checkout).
// unit_price принимается и строкой ("9.99"), и числом.
type CheckoutRequest struct {
	ItemCount *int             `json:"item_count"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// Validate проверяет наличие полей и границы цены. Знак и количество проверяет оркестратор.
func (r *CheckoutRequest) Validate() error {
	if r.ItemCount == nil {
		return errors.New("item_count is required")
	}
	if r.UnitPrice == nil {
		return errors.New("unit_price is required")
	}
	return domain.CheckPrice(*r.UnitPrice)
}

// CheckoutResponse — результат оформления.
type CheckoutResponse struct {
	ID      string          `json:"id,omitempty"`
	Success bool            `json:"success"`
	State   string          `json:"state,omitempty"`
	Total   decimal.Decimal `json:"total"`
	Error   string          `json:"error,omitempty"`
}

// HistoryItem — одна попытка оформления (для GET /api/v1/checkouts).
type HistoryItem struct {
	ID        string          `json:"id"`
	ItemCount int             `json:"item_count"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
	State     string          `json:"state"`
	Success   bool            `json:"success"`
	Timestamp time.Time       `json:"timestamp"`
}

// HistoryResponse — список попыток.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}
