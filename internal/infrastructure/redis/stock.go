package redis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"lizzyShop/internal/ports"
)

var _ ports.StockChecker = (*StockChecker)(nil)

// StockChecker реализует ports.StockChecker через Redis: остаток лежит целым числом по ключу.
// Нет ключа или Redis недоступен — товара нет (false), ошибка только в лог.
type StockChecker struct {
	cli     *Client
	key     string
	timeout time.Duration
	log     *slog.Logger
}

// NewStockChecker возвращает проверку склада по ключу key.
func NewStockChecker(cli *Client, key string, timeout time.Duration, log *slog.Logger) *StockChecker {
	return &StockChecker{cli: cli, key: key, timeout: timeout, log: log}
}

// IsAvailable сравнивает quantity с остатком по ключу.
func (s *StockChecker) IsAvailable(quantity int) bool {
	if quantity <= 0 {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	available, err := s.cli.Get(ctx, s.key).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			s.log.Debug("stock key missing", "key", s.key)
			return false
		}
		s.log.Warn("stock check failed", "key", s.key, "error", err)
		return false
	}
	if quantity > available {
		s.log.Debug("stock short", "key", s.key, "quantity", quantity, "available", available)
		return false
	}
	return true
}

// SetStock записывает остаток (сидирование при старте и тесты).
func (s *StockChecker) SetStock(ctx context.Context, available int) error {
	if err := s.cli.Set(ctx, s.key, available, 0).Err(); err != nil {
		s.log.Debug("stock set failed", "key", s.key, "error", err)
		return err
	}
	return nil
}
