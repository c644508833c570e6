package memory

import (
	"context"
	"slices"
	"sync"

	"lizzyShop/internal/domain"
	"lizzyShop/internal/ports"
)

var (
	_ ports.OperationRepository = (*OperationJournal)(nil)
	_ ports.CheckoutRepository  = (*CheckoutJournal)(nil)
)

// OperationJournal — журнал операций в памяти, когда PostgreSQL не настроен.
type OperationJournal struct {
	mu   sync.Mutex
	ops  []domain.Operation
	next int
}

func NewOperationJournal() *OperationJournal {
	return &OperationJournal{}
}

// SaveOperation добавляет операцию и присваивает ей ID.
func (j *OperationJournal) SaveOperation(_ context.Context, op domain.Operation) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.next++
	op.ID = j.next
	j.ops = append(j.ops, op)
	return nil
}

// GetHistory возвращает операции, последние сначала.
func (j *OperationJournal) GetHistory(_ context.Context) ([]domain.Operation, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	list := slices.Clone(j.ops)
	slices.Reverse(list)
	return list, nil
}

func (j *OperationJournal) Ping(context.Context) error { return nil }

// CheckoutJournal — журнал попыток оформления в памяти, когда MongoDB не настроен.
type CheckoutJournal struct {
	mu        sync.Mutex
	checkouts []domain.Checkout
}

func NewCheckoutJournal() *CheckoutJournal {
	return &CheckoutJournal{}
}

func (j *CheckoutJournal) SaveCheckout(_ context.Context, c domain.Checkout) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.checkouts = append(j.checkouts, c)
	return nil
}

// GetCheckouts возвращает попытки, последние сначала.
func (j *CheckoutJournal) GetCheckouts(_ context.Context) ([]domain.Checkout, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	list := slices.Clone(j.checkouts)
	slices.Reverse(list)
	return list, nil
}

func (j *CheckoutJournal) Ping(context.Context) error { return nil }
