package kafka

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"

	"lizzyShop/internal/domain"
	"lizzyShop/internal/ports"
)

var _ ports.IProducer = (*Producer)(nil)

// kindHeader — заголовок с типом события (operation, checkout), дублирует префикс ключа для внешних читателей.
const kindHeader = "event-kind"

// Producer — обёртка над kafka.Writer для отправки событий в топик.
type Producer struct {
	w *kafka.Writer
}

// NewProducer создаёт продюсера по конфигу. После использования вызови Close().
func NewProducer(cfg *Config) *Producer {
	return New(cfg).Producer()
}

// Send отправляет одно событие. Ключ вида "operation:..." или "checkout:...".
func (p *Producer) Send(ctx context.Context, key, value []byte) error {
	if err := p.w.WriteMessages(ctx, message(key, value)); err != nil {
		return fmt.Errorf("kafka send %q: %w", key, err)
	}
	return nil
}

// message собирает сообщение с заголовком типа события.
func message(key, value []byte) kafka.Message {
	msg := kafka.Message{Key: key, Value: value}
	if kind := domain.EventKind(string(key)); kind != "" {
		msg.Headers = []kafka.Header{{Key: kindHeader, Value: []byte(kind)}}
	}
	return msg
}

// Close закрывает продюсера.
func (p *Producer) Close() error {
	return p.w.Close()
}
