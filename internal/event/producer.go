package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adityatriand/catering-app/internal/domain"
	pkgkafka "github.com/adityatriand/catering-app/pkg/kafka"
)

// Kafka topics for order and stock domain events.
var (
	TopicOrderCreated       = pkgkafka.Topic("order", "created")
	TopicOrderStatusChanged = pkgkafka.Topic("order", "status_changed")
	TopicOrderUpdated       = pkgkafka.Topic("order", "updated")
	TopicOrderDeleted       = pkgkafka.Topic("order", "deleted")
	TopicStockAdjusted      = pkgkafka.Topic("stock", "adjusted")
)

// Aggregate type constants.
const (
	AggregateTypeOrder = "order"
	AggregateTypeItem  = "item"
)

// Source identifier for events originating from this application.
const Source = "catering"

// OrderCreatedData is the payload for an order.created event (full snapshot).
type OrderCreatedData struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	Address       string          `json:"address"`
	Status        string          `json:"status"`
	TotalPrice    int64           `json:"total_price"`
	Lines         []OrderLineData `json:"lines"`
}

// OrderLineData is the event payload for one order line.
type OrderLineData struct {
	ID        string `json:"id"`
	ItemID    string `json:"item_id"`
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// OrderStatusChangedData is the payload for an order.status_changed event.
type OrderStatusChangedData struct {
	OrderID   string `json:"order_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// OrderUpdatedData is the payload for an order.updated event.
type OrderUpdatedData struct {
	OrderID    string          `json:"order_id"`
	TotalPrice int64           `json:"total_price"`
	Lines      []OrderLineData `json:"lines"`
}

// OrderDeletedData is the payload for an order.deleted event.
type OrderDeletedData struct {
	OrderID string `json:"order_id"`
}

// StockAdjustedData is the payload for a stock.adjusted event, emitted on
// manual corrections only. Stock moved by orders travels with the order
// events instead.
type StockAdjustedData struct {
	ItemID   string `json:"item_id"`
	Delta    int    `json:"delta"`
	NewStock int    `json:"new_stock"`
}

// Producer publishes order and stock domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishOrderCreated publishes an order.created event with the full order snapshot.
func (p *Producer) PublishOrderCreated(ctx context.Context, order *domain.Order) error {
	data := OrderCreatedData{
		ID:            order.ID.String(),
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		Address:       order.Address,
		Status:        order.Status.String(),
		TotalPrice:    order.TotalPrice,
		Lines:         lineData(order.Lines),
	}

	event, err := pkgkafka.NewEvent(TopicOrderCreated, data.ID, AggregateTypeOrder, Source, data)
	if err != nil {
		return fmt.Errorf("create order.created event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicOrderCreated, event); err != nil {
		return fmt.Errorf("publish order.created event: %w", err)
	}

	p.logger.DebugContext(ctx, "published order.created event",
		slog.String("order_id", data.ID),
		slog.Int64("total_price", order.TotalPrice),
	)

	return nil
}

// PublishOrderStatusChanged publishes an order.status_changed event.
func (p *Producer) PublishOrderStatusChanged(ctx context.Context, orderID string, oldStatus, newStatus domain.Status) error {
	data := OrderStatusChangedData{
		OrderID:   orderID,
		OldStatus: oldStatus.String(),
		NewStatus: newStatus.String(),
	}

	event, err := pkgkafka.NewEvent(TopicOrderStatusChanged, orderID, AggregateTypeOrder, Source, data)
	if err != nil {
		return fmt.Errorf("create order.status_changed event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicOrderStatusChanged, event); err != nil {
		return fmt.Errorf("publish order.status_changed event: %w", err)
	}

	p.logger.DebugContext(ctx, "published order.status_changed event",
		slog.String("order_id", orderID),
		slog.String("old_status", data.OldStatus),
		slog.String("new_status", data.NewStatus),
	)

	return nil
}

// PublishOrderUpdated publishes an order.updated event after a line
// reconciliation or customer change.
func (p *Producer) PublishOrderUpdated(ctx context.Context, order *domain.Order) error {
	data := OrderUpdatedData{
		OrderID:    order.ID.String(),
		TotalPrice: order.TotalPrice,
		Lines:      lineData(order.Lines),
	}

	event, err := pkgkafka.NewEvent(TopicOrderUpdated, data.OrderID, AggregateTypeOrder, Source, data)
	if err != nil {
		return fmt.Errorf("create order.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicOrderUpdated, event); err != nil {
		return fmt.Errorf("publish order.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published order.updated event",
		slog.String("order_id", data.OrderID),
	)

	return nil
}

// PublishOrderDeleted publishes an order.deleted event.
func (p *Producer) PublishOrderDeleted(ctx context.Context, orderID string) error {
	data := OrderDeletedData{OrderID: orderID}

	event, err := pkgkafka.NewEvent(TopicOrderDeleted, orderID, AggregateTypeOrder, Source, data)
	if err != nil {
		return fmt.Errorf("create order.deleted event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicOrderDeleted, event); err != nil {
		return fmt.Errorf("publish order.deleted event: %w", err)
	}

	p.logger.DebugContext(ctx, "published order.deleted event",
		slog.String("order_id", orderID),
	)

	return nil
}

// PublishStockAdjusted publishes a stock.adjusted event.
func (p *Producer) PublishStockAdjusted(ctx context.Context, itemID string, delta, newStock int) error {
	data := StockAdjustedData{
		ItemID:   itemID,
		Delta:    delta,
		NewStock: newStock,
	}

	event, err := pkgkafka.NewEvent(TopicStockAdjusted, itemID, AggregateTypeItem, Source, data)
	if err != nil {
		return fmt.Errorf("create stock.adjusted event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicStockAdjusted, event); err != nil {
		return fmt.Errorf("publish stock.adjusted event: %w", err)
	}

	p.logger.DebugContext(ctx, "published stock.adjusted event",
		slog.String("item_id", itemID),
		slog.Int("delta", delta),
		slog.Int("new_stock", newStock),
	)

	return nil
}

func lineData(lines []domain.OrderLine) []OrderLineData {
	out := make([]OrderLineData, len(lines))
	for i, line := range lines {
		out[i] = OrderLineData{
			ID:        line.ID.String(),
			ItemID:    line.ItemID.String(),
			ItemName:  line.ItemName,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		}
	}
	return out
}
