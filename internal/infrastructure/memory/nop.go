package memory

import (
	"context"

	"lizzyShop/internal/domain"
	"lizzyShop/internal/ports"
)

var (
	_ ports.IProducer  = NopProducer{}
	_ ports.IAnalytics = NopAnalytics{}
)

// NopProducer — брокер-заглушка, когда Kafka выключена.
type NopProducer struct{}

func (NopProducer) Send(context.Context, []byte, []byte) error { return nil }

// NopAnalytics — аналитика-заглушка, когда ClickHouse выключен.
type NopAnalytics struct{}

func (NopAnalytics) WriteOperation(context.Context, domain.Operation) error { return nil }

func (NopAnalytics) WriteCheckout(context.Context, domain.Checkout) error { return nil }
