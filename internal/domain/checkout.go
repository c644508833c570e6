package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Границы цены за единицу: столько же знаков держит колонка Decimal(18,4) аналитики.
const (
	MaxPriceScale         = 4
	MaxPriceIntegerDigits = 12
)

// CheckPrice отсекает цены, которые нельзя ни сохранить, ни дёшево перемножить:
// больше MaxPriceScale знаков после запятой или больше MaxPriceIntegerDigits до неё.
func CheckPrice(d decimal.Decimal) error {
	exp := d.Exponent()
	if exp < -MaxPriceScale {
		// Хвостовые нули допустимы (19.990000), но экспонента ограничена до Truncate.
		if exp < -2*MaxPriceIntegerDigits || !d.Truncate(MaxPriceScale).Equal(d) {
			return fmt.Errorf("%w: unit price has more than %d decimal places", ErrInvalidArgument, MaxPriceScale)
		}
	}
	if d.NumDigits()+int(exp) > MaxPriceIntegerDigits {
		return fmt.Errorf("%w: unit price exceeds %d integer digits", ErrInvalidArgument, MaxPriceIntegerDigits)
	}
	return nil
}

// CheckoutState — терминальное состояние одного вызова checkout.
type CheckoutState string

const (
	// CheckoutRejected — склад отказал, оплата не запускалась.
	CheckoutRejected CheckoutState = "rejected"
	// CheckoutSettled — оплата запускалась, итог в Paid.
	CheckoutSettled CheckoutState = "settled"
)

// CheckoutOutcome — результат оркестратора: где закончился вызов и чем.
type CheckoutOutcome struct {
	State CheckoutState
	Total decimal.Decimal
	Paid  bool
}

// Success — итог checkout: true только если склад и оплата ответили true.
func (o CheckoutOutcome) Success() bool {
	return o.State == CheckoutSettled && o.Paid
}

// Checkout — запись об одной попытке оформления заказа.
type Checkout struct {
	ID        string          `json:"id"`
	ItemCount int             `json:"item_count"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
	State     CheckoutState   `json:"state"`
	Success   bool            `json:"success"`
	Timestamp time.Time       `json:"timestamp"`
}
