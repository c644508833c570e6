package memory

import (
	"errors"
	"log/slog"
	"sync"

	"lizzyShop/internal/ports"
)

// DefaultStock — сколько штук лежит на складе драйвера по умолчанию.
const DefaultStock = 100

var (
	ErrNegativeStock = errors.New("available stock cannot be negative")
	ErrOverConsume   = errors.New("cannot consume more items than available")
)

var _ ports.StockChecker = (*InventoryDriver)(nil)

// InventoryDriver — склад в памяти. Запоминает число проверок и последний запрос.
type InventoryDriver struct {
	mu          sync.Mutex
	available   int
	lastChecked int
	calls       int
	log         *slog.Logger
}

// NewInventoryDriver создаёт склад с available штук.
func NewInventoryDriver(available int, log *slog.Logger) (*InventoryDriver, error) {
	if available < 0 {
		return nil, ErrNegativeStock
	}
	if log == nil {
		log = slog.Default()
	}
	return &InventoryDriver{available: available, log: log}, nil
}

// IsAvailable реализует ports.StockChecker: хватает ли quantity штук.
func (d *InventoryDriver) IsAvailable(quantity int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.calls++
	d.lastChecked = quantity
	if quantity <= 0 {
		d.log.Debug("inventory check: invalid quantity", "quantity", quantity)
		return false
	}
	ok := quantity <= d.available
	if !ok {
		d.log.Debug("inventory check: short", "quantity", quantity, "available", d.available, "shortage", quantity-d.available)
	}
	return ok
}

// SetAvailableStock меняет остаток.
func (d *InventoryDriver) SetAvailableStock(available int) error {
	if available < 0 {
		return ErrNegativeStock
	}
	d.mu.Lock()
	d.available = available
	d.mu.Unlock()
	return nil
}

// Consume списывает quantity штук со склада.
func (d *InventoryDriver) Consume(quantity int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if quantity > d.available {
		return ErrOverConsume
	}
	d.available -= quantity
	return nil
}

// AvailableStock — текущий остаток.
func (d *InventoryDriver) AvailableStock() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.available
}

// LastChecked — quantity последней проверки.
func (d *InventoryDriver) LastChecked() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastChecked
}

// Calls — сколько раз вызывали IsAvailable.
func (d *InventoryDriver) Calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

// Reset сбрасывает счётчики и возвращает остаток DefaultStock.
func (d *InventoryDriver) Reset() {
	d.mu.Lock()
	d.calls, d.lastChecked, d.available = 0, 0, DefaultStock
	d.mu.Unlock()
}
