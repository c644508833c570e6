package testutil

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// ShopSeed — стартовое состояние магазина в Redis: остаток склада и разрешённые операции.
type ShopSeed struct {
	StockKey   string
	Stock      int
	PolicyKey  string
	Operations []string
}

// SeedRedis очищает базу Redis по addr и записывает seed одной транзакцией.
func SeedRedis(ctx context.Context, addr string, seed ShopSeed) error {
	cli := goredis.NewClient(&goredis.Options{Addr: addr})
	defer cli.Close()

	_, err := cli.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.FlushDB(ctx)
		if seed.StockKey != "" {
			p.Set(ctx, seed.StockKey, seed.Stock, 0)
		}
		if seed.PolicyKey != "" && len(seed.Operations) > 0 {
			members := make([]any, len(seed.Operations))
			for i, op := range seed.Operations {
				members[i] = op
			}
			p.SAdd(ctx, seed.PolicyKey, members...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed redis: %w", err)
	}
	return nil
}
