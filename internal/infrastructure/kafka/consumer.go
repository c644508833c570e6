package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"lizzyShop/internal/domain"
	"lizzyShop/internal/ports"
)

// Message — сообщение из Kafka (ключ, тело, топик, партиция, offset).
type Message = kafka.Message

// reader — то, что консьюмеру нужно от kafka.Reader.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Повторы обработки одного сообщения, прежде чем его пропустить.
const (
	defaultMaxAttempts = 3
	defaultRetryDelay  = time.Second
)

// Consumer читает события и раздаёт их use case'ам по префиксу ключа.
type Consumer struct {
	r           reader
	calcUC      ports.ICalculatorUseCase
	checkoutUC  ports.ICheckoutUseCase
	log         *slog.Logger
	maxAttempts int
	retryDelay  time.Duration
}

// NewConsumer создаёт консьюмера по конфигу. После использования вызови Close().
func NewConsumer(cfg *Config, calcUC ports.ICalculatorUseCase, checkoutUC ports.ICheckoutUseCase, log *slog.Logger) *Consumer {
	return newConsumer(New(cfg).Reader(), calcUC, checkoutUC, log)
}

func newConsumer(r reader, calcUC ports.ICalculatorUseCase, checkoutUC ports.ICheckoutUseCase, log *slog.Logger) *Consumer {
	return &Consumer{
		r:           r,
		calcUC:      calcUC,
		checkoutUC:  checkoutUC,
		log:         log,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
	}
}

// Run в цикле читает сообщения, обрабатывает их через process и коммитит.
// Выход по отмене ctx или при ошибке чтения/коммита.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped", "error", err)
			return err
		}

		if err := c.process(ctx, msg); err != nil {
			return err
		}

		if err := c.r.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped (commit)", "error", err)
			return err
		}
	}
}

// process вызывает handle до maxAttempts раз с паузой retryDelay. Offset в Kafka
// накопительный: коммит следующего сообщения закрыл бы и это, поэтому после последней
// неудачной попытки сообщение пропускается с ошибкой в логе. Ошибка — только отмена ctx.
func (c *Consumer) process(ctx context.Context, msg kafka.Message) error {
	var err error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err = c.handle(ctx, msg); err == nil {
			return nil
		}
		c.log.Warn("kafka handle error", append(msgAttrs(msg), "attempt", attempt, "error", err)...)
		if attempt == c.maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.retryDelay):
		}
	}
	c.log.Error("kafka handle failed, skip", append(msgAttrs(msg), "attempts", c.maxAttempts, "error", err)...)
	return nil
}

// handle обрабатывает одно сообщение. Битые и неизвестные сообщения пропускает (nil),
// ошибку use case возвращает для повтора.
func (c *Consumer) handle(ctx context.Context, msg kafka.Message) error {
	switch domain.EventKind(string(msg.Key)) {
	case domain.EventOperation:
		var op domain.Operation
		if err := json.Unmarshal(msg.Value, &op); err != nil {
			c.log.Warn("kafka unmarshal error, skip", append(msgAttrs(msg), "error", err)...)
			return nil
		}
		return c.calcUC.HandleOperationEvent(ctx, op)
	case domain.EventCheckout:
		var ch domain.Checkout
		if err := json.Unmarshal(msg.Value, &ch); err != nil {
			c.log.Warn("kafka unmarshal error, skip", append(msgAttrs(msg), "error", err)...)
			return nil
		}
		return c.checkoutUC.HandleCheckoutEvent(ctx, ch)
	default:
		c.log.Warn("kafka unknown event, skip", msgAttrs(msg)...)
		return nil
	}
}

func msgAttrs(msg kafka.Message) []any {
	return []any{"key", string(msg.Key), "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset}
}

// Close закрывает консьюмера.
func (c *Consumer) Close() error {
	return c.r.Close()
}
