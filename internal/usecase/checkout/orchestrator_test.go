package checkout

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lizzyShop/internal/domain"
	"lizzyShop/internal/mocks"
	"lizzyShop/internal/ports"
)

// amountEq сравнивает суммы по значению: 50 и 50.0 — одно и то же.
type amountEq struct{ want decimal.Decimal }

func (m amountEq) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m amountEq) String() string { return fmt.Sprintf("amount equal to %s", m.want) }

func amount(s string) gomock.Matcher { return amountEq{want: decimal.RequireFromString(s)} }

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newOrchestrator(t *testing.T, stock ports.StockChecker, payment ports.PaymentProcessor) *Orchestrator {
	t.Helper()
	o, err := NewOrchestrator(stock, payment)
	require.NoError(t, err)
	return o
}

func TestNewOrchestrator_MissingCapability(t *testing.T) {
	ctrl := gomock.NewController(t)
	stock := mocks.NewMockStockChecker(ctrl)
	payment := mocks.NewMockPaymentProcessor(ctrl)

	o, err := NewOrchestrator(nil, payment)
	assert.Nil(t, o)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "stock checker")

	o, err = NewOrchestrator(stock, nil)
	assert.Nil(t, o)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "payment processor")

	var nilStock *mocks.MockStockChecker
	_, err = NewOrchestrator(nilStock, payment)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "stock checker")
}

func TestCheckout_Success(t *testing.T) {
	tests := []struct {
		name      string
		itemCount int
		unitPrice string
		total     string
	}{
		{name: "5 по 10.0", itemCount: 5, unitPrice: "10.0", total: "50"},
		{name: "3 по 9.99", itemCount: 3, unitPrice: "9.99", total: "29.97"},
		{name: "100 по 5.0", itemCount: 100, unitPrice: "5.0", total: "500"},
		{name: "бесплатно", itemCount: 10, unitPrice: "0", total: "0"},
		{name: "одна штука", itemCount: 1, unitPrice: "100", total: "100"},
		{name: "большие значения", itemCount: 10000, unitPrice: "999.99", total: "9999900"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			stock := mocks.NewMockStockChecker(ctrl)
			payment := mocks.NewMockPaymentProcessor(ctrl)

			// Склад строго раньше оплаты, каждый ровно один раз.
			gomock.InOrder(
				stock.EXPECT().IsAvailable(tt.itemCount).Return(true).Times(1),
				payment.EXPECT().Charge(amount(tt.total)).Return(true).Times(1),
			)

			ok, err := newOrchestrator(t, stock, payment).Checkout(tt.itemCount, price(tt.unitPrice))
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestCheckout_ExactDecimalTotal(t *testing.T) {
	var charged decimal.Decimal
	payment := ports.PaymentProcessorFunc(func(a decimal.Decimal) bool {
		charged = a
		return true
	})
	stock := ports.StockCheckerFunc(func(int) bool { return true })

	ok, err := newOrchestrator(t, stock, payment).Checkout(3, price("9.99"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "29.97", charged.String())
}

func TestCheckout_InsufficientStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	stock := mocks.NewMockStockChecker(ctrl)
	// Оплата без EXPECT: любой вызов Charge уронит тест.
	payment := mocks.NewMockPaymentProcessor(ctrl)

	stock.EXPECT().IsAvailable(150).Return(false).Times(1)

	o := newOrchestrator(t, stock, payment)
	ok, err := o.Checkout(150, price("5.0"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckout_PaymentVerdictIsReturnedVerbatim(t *testing.T) {
	for _, verdict := range []bool{true, false} {
		t.Run(fmt.Sprint(verdict), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			stock := mocks.NewMockStockChecker(ctrl)
			payment := mocks.NewMockPaymentProcessor(ctrl)

			stock.EXPECT().IsAvailable(5).Return(true)
			payment.EXPECT().Charge(amount("50")).Return(verdict)

			ok, err := newOrchestrator(t, stock, payment).Checkout(5, price("10"))
			require.NoError(t, err)
			assert.Equal(t, verdict, ok)
		})
	}
}

func TestCheckout_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		itemCount int
		unitPrice string
		message   string
	}{
		{name: "ноль штук", itemCount: 0, unitPrice: "10", message: "item count must be positive"},
		{name: "отрицательное количество", itemCount: -5, unitPrice: "10", message: "item count must be positive"},
		{name: "отрицательная цена", itemCount: 5, unitPrice: "-10", message: "price cannot be negative"},
		{name: "чуть меньше нуля", itemCount: 1, unitPrice: "-0.01", message: "price cannot be negative"},
		{name: "всё плохо — сначала количество", itemCount: 0, unitPrice: "-1", message: "item count must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// Ни склад, ни оплата не должны вызываться.
			stock := mocks.NewMockStockChecker(ctrl)
			payment := mocks.NewMockPaymentProcessor(ctrl)

			ok, err := newOrchestrator(t, stock, payment).Checkout(tt.itemCount, price(tt.unitPrice))
			assert.False(t, ok)
			require.ErrorIs(t, err, domain.ErrInvalidArgument)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestRun_States(t *testing.T) {
	inStock := ports.StockCheckerFunc(func(q int) bool { return q <= 100 })
	accept := ports.PaymentProcessorFunc(func(decimal.Decimal) bool { return true })
	decline := ports.PaymentProcessorFunc(func(decimal.Decimal) bool { return false })

	out, err := newOrchestrator(t, inStock, accept).Run(150, price("5"))
	require.NoError(t, err)
	assert.Equal(t, domain.CheckoutRejected, out.State)
	assert.True(t, out.Total.IsZero())
	assert.False(t, out.Success())

	out, err = newOrchestrator(t, inStock, decline).Run(100, price("5"))
	require.NoError(t, err)
	assert.Equal(t, domain.CheckoutSettled, out.State)
	assert.True(t, out.Total.Equal(price("500")))
	assert.False(t, out.Paid)
	assert.False(t, out.Success())

	out, err = newOrchestrator(t, inStock, accept).Run(100, price("5"))
	require.NoError(t, err)
	assert.True(t, out.Success())
}

func TestCheckout_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	stock := mocks.NewMockStockChecker(ctrl)
	payment := mocks.NewMockPaymentProcessor(ctrl)

	stock.EXPECT().IsAvailable(100).Return(true).Times(3)
	payment.EXPECT().Charge(amount("500")).Return(true).Times(3)

	o := newOrchestrator(t, stock, payment)
	for i := 0; i < 3; i++ {
		ok, err := o.Checkout(100, price("5.0"))
		require.NoError(t, err)
		assert.True(t, ok)
	}
}
