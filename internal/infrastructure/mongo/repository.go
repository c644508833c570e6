package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"lizzyShop/internal/domain"
	"lizzyShop/internal/ports"
)

var _ ports.CheckoutRepository = (*CheckoutRepo)(nil)

// checkoutsLimit — сколько последних попыток отдаёт GetCheckouts.
const checkoutsLimit = 100

// checkoutDoc — документ в коллекции checkouts. Деньги храним строкой, чтобы не терять точность.
type checkoutDoc struct {
	ID        string    `bson:"_id"`
	ItemCount int       `bson:"item_count"`
	UnitPrice string    `bson:"unit_price"`
	Total     string    `bson:"total"`
	State     string    `bson:"state"`
	Success   bool      `bson:"success"`
	CreatedAt time.Time `bson:"created_at"`
}

// CheckoutRepo реализует ports.CheckoutRepository для MongoDB.
type CheckoutRepo struct {
	client *Client
	log    *slog.Logger
}

// NewCheckoutRepo возвращает журнал попыток оформления.
func NewCheckoutRepo(client *Client, log *slog.Logger) *CheckoutRepo {
	return &CheckoutRepo{client: client, log: log}
}

// SaveCheckout сохраняет попытку в коллекцию.
func (r *CheckoutRepo) SaveCheckout(ctx context.Context, c domain.Checkout) error {
	doc := checkoutDoc{
		ID:        c.ID,
		ItemCount: c.ItemCount,
		UnitPrice: c.UnitPrice.String(),
		Total:     c.Total.String(),
		State:     string(c.State),
		Success:   c.Success,
		CreatedAt: c.Timestamp,
	}
	_, err := r.client.Coll().InsertOne(ctx, doc)
	if err != nil {
		r.log.Debug("SaveCheckout failed", "error", err)
		return err
	}
	return nil
}

// GetCheckouts возвращает последние checkoutsLimit попыток (последние сначала).
func (r *CheckoutRepo) GetCheckouts(ctx context.Context) ([]domain.Checkout, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(checkoutsLimit)
	cursor, err := r.client.Coll().Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Debug("GetCheckouts failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []checkoutDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.Checkout, 0, len(docs))
	for _, d := range docs {
		unitPrice, err := decimal.NewFromString(d.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("checkout %s unit_price: %w", d.ID, err)
		}
		total, err := decimal.NewFromString(d.Total)
		if err != nil {
			return nil, fmt.Errorf("checkout %s total: %w", d.ID, err)
		}
		list = append(list, domain.Checkout{
			ID:        d.ID,
			ItemCount: d.ItemCount,
			UnitPrice: unitPrice,
			Total:     total,
			State:     domain.CheckoutState(d.State),
			Success:   d.Success,
			Timestamp: d.CreatedAt,
		})
	}
	return list, nil
}

// Ping проверяет доступность БД.
func (r *CheckoutRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}
