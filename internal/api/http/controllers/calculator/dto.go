package calculator

import (
	"errors"
	"time"

	"lizzyShop/internal/domain"
)

// CalculateRequest — запрос на вычисление (для POST /api/v1/calculate).
// Числа указателями: 0 — допустимый операнд, а отсутствие поля — ошибка.
type CalculateRequest struct {
	Number1   *int   `json:"number1"`
	Number2   *int   `json:"number2"`
	Operation string `json:"operation"`
}

// Validate проверяет, что оба операнда переданы и лежат в int32. Имя операции проверяет диспетчер.
func (r *CalculateRequest) Validate() error {
	if r.Number1 == nil || r.Number2 == nil {
		return errors.New("number1 and number2 are required")
	}
	if err := domain.CheckOperand(*r.Number1); err != nil {
		return err
	}
	return domain.CheckOperand(*r.Number2)
}

// CalculateResponse — ответ с результатом.
type CalculateResponse struct {
	Operation string  `json:"operation,omitempty"`
	Result    float64 `json:"result"`
	Error     string  `json:"error,omitempty"`
}

// HistoryItem — одна запись в истории (для GET /api/v1/history).
type HistoryItem struct {
	ID        int       `json:"id"`
	Number1   int       `json:"number1"`
	Number2   int       `json:"number2"`
	Operation string    `json:"operation"`
	Result    float64   `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryResponse — ответ со списком операций.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}
