package redis

import (
	"context"
	"log/slog"
	"time"

	"lizzyShop/internal/domain"
	"lizzyShop/internal/ports"
)

var _ ports.OperationValidator = (*OperationPolicy)(nil)

// OperationPolicy реализует ports.OperationValidator через множество Redis:
// операция разрешена, если она есть в SET по ключу.
type OperationPolicy struct {
	cli     *Client
	key     string
	timeout time.Duration
	log     *slog.Logger
}

// NewOperationPolicy возвращает политику по ключу key.
func NewOperationPolicy(cli *Client, key string, timeout time.Duration, log *slog.Logger) *OperationPolicy {
	return &OperationPolicy{cli: cli, key: key, timeout: timeout, log: log}
}

// IsValidOperation — SISMEMBER. Пустое имя и ошибки Redis — false.
func (p *OperationPolicy) IsValidOperation(name string) bool {
	name = domain.NormalizeOperation(name)
	if name == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	ok, err := p.cli.SIsMember(ctx, p.key, name).Result()
	if err != nil {
		p.log.Warn("policy check failed", "key", p.key, "operation", name, "error", err)
		return false
	}
	return ok
}

// Allow добавляет операции в политику.
func (p *OperationPolicy) Allow(ctx context.Context, names ...string) error {
	members := make([]any, 0, len(names))
	for _, n := range names {
		if n = domain.NormalizeOperation(n); n != "" {
			members = append(members, n)
		}
	}
	if len(members) == 0 {
		return nil
	}
	return p.cli.SAdd(ctx, p.key, members...).Err()
}

// Revoke убирает операции из политики.
func (p *OperationPolicy) Revoke(ctx context.Context, names ...string) error {
	members := make([]any, 0, len(names))
	for _, n := range names {
		members = append(members, domain.NormalizeOperation(n))
	}
	if len(members) == 0 {
		return nil
	}
	return p.cli.SRem(ctx, p.key, members...).Err()
}
