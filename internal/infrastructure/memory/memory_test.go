package memory

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lizzyShop/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestAllowList(t *testing.T) {
	policy := NewAllowList("add", " SUBTRACT ", "")

	assert.True(t, policy.IsValidOperation("add"))
	assert.True(t, policy.IsValidOperation("Add "))
	assert.True(t, policy.IsValidOperation("subtract"))
	assert.False(t, policy.IsValidOperation("multiply"))
	assert.False(t, policy.IsValidOperation(""))
	assert.False(t, policy.IsValidOperation("   "))
}

func TestInventoryDriver(t *testing.T) {
	d, err := NewInventoryDriver(50, newTestLogger())
	require.NoError(t, err)

	assert.True(t, d.IsAvailable(30))
	assert.Equal(t, 30, d.LastChecked())
	assert.Equal(t, 1, d.Calls())

	assert.False(t, d.IsAvailable(100))
	assert.Equal(t, 2, d.Calls())

	require.NoError(t, d.SetAvailableStock(200))
	assert.True(t, d.IsAvailable(100))

	assert.False(t, d.IsAvailable(0))
	assert.False(t, d.IsAvailable(-1))
	assert.Equal(t, 5, d.Calls())
}

func TestInventoryDriver_Stock(t *testing.T) {
	_, err := NewInventoryDriver(-1, nil)
	require.ErrorIs(t, err, ErrNegativeStock)

	d, err := NewInventoryDriver(10, nil)
	require.NoError(t, err)
	require.ErrorIs(t, d.SetAvailableStock(-5), ErrNegativeStock)

	require.NoError(t, d.Consume(4))
	assert.Equal(t, 6, d.AvailableStock())
	require.ErrorIs(t, d.Consume(7), ErrOverConsume)
	assert.Equal(t, 6, d.AvailableStock())

	d.IsAvailable(3)
	d.Reset()
	assert.Equal(t, DefaultStock, d.AvailableStock())
	assert.Equal(t, 0, d.Calls())
	assert.Equal(t, 0, d.LastChecked())
}

func TestPaymentDriver(t *testing.T) {
	d := NewPaymentDriver(true, newTestLogger())

	assert.True(t, d.Charge(decimal.NewFromInt(100)))
	assert.True(t, d.LastAmount().Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 1, d.Calls())
	assert.True(t, strings.HasPrefix(d.LastTransactionID(), "TXN-"))

	assert.False(t, d.Charge(decimal.NewFromInt(-50)))
	assert.Equal(t, 2, d.Calls())

	assert.True(t, d.Charge(decimal.Zero), "бесплатный заказ проходит")

	d.SetShouldSucceed(false)
	assert.False(t, d.Charge(decimal.NewFromInt(100)))

	d.Reset()
	assert.Equal(t, 0, d.Calls())
	assert.Empty(t, d.LastTransactionID())
	assert.True(t, d.Charge(decimal.NewFromInt(1)))
}

func TestOperationJournal(t *testing.T) {
	ctx := context.Background()
	j := NewOperationJournal()

	empty, err := j.GetHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, j.SaveOperation(ctx, domain.Operation{Number1: 1, Number2: 2, Operation: domain.OpAdd, Result: 3}))
	require.NoError(t, j.SaveOperation(ctx, domain.Operation{Number1: 6, Number2: 3, Operation: domain.OpDivide, Result: 2}))

	list, err := j.GetHistory(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 2, list[0].ID)
	assert.Equal(t, domain.OpDivide, list[0].Operation)
	assert.Equal(t, 1, list[1].ID)
	assert.NoError(t, j.Ping(ctx))
}

func TestCheckoutJournal(t *testing.T) {
	ctx := context.Background()
	j := NewCheckoutJournal()

	require.NoError(t, j.SaveCheckout(ctx, domain.Checkout{ID: "first"}))
	require.NoError(t, j.SaveCheckout(ctx, domain.Checkout{ID: "second"}))

	list, err := j.GetCheckouts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].ID)
	assert.NoError(t, j.Ping(ctx))
}
