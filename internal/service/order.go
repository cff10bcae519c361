package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/adityatriand/catering-app/internal/domain"
	"github.com/adityatriand/catering-app/internal/event"
	"github.com/adityatriand/catering-app/internal/repository"
	apperrors "github.com/adityatriand/catering-app/pkg/errors"
)

// OrderService implements the business logic for order operations.
type OrderService struct {
	repo     repository.OrderRepository
	cache    MenuCache
	producer *event.Producer
	logger   *slog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository, cache MenuCache, producer *event.Producer, logger *slog.Logger) *OrderService {
	return &OrderService{
		repo:     repo,
		cache:    cache,
		producer: producer,
		logger:   logger,
	}
}

// CreateOrder places a new order. Every order starts in status NEW and
// withdraws stock for all of its lines atomically; if any item cannot cover
// its line, the order is rejected and no stock moves.
func (s *OrderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	now := time.Now().UTC()
	orderID := uuid.New()

	lines := make([]domain.OrderLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		// Zero-quantity lines mean "no line" and never reach the order.
		if line.Quantity == 0 {
			continue
		}
		lines = append(lines, domain.OrderLine{
			ID:        uuid.New(),
			OrderID:   orderID,
			ItemID:    line.ItemID,
			Quantity:  line.Quantity,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	order := &domain.Order{
		ID:            orderID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Address:       req.Address,
		Status:        domain.StatusNew,
		Lines:         lines,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err := s.producer.PublishOrderCreated(ctx, order); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order.created event",
			slog.String("order_id", order.ID.String()),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}

	s.invalidateMenu(ctx)

	s.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID.String()),
		slog.String("customer_email", order.CustomerEmail),
		slog.Int64("total_price", order.TotalPrice),
	)

	return order, nil
}

// GetOrder retrieves an order by its ID.
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return order, nil
}

// ListOrders returns a filtered, paginated list of orders. The same filter
// drives the vendor reports: by day, by customer, by status, by total range.
func (s *OrderService) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 20
	}
	if filter.PerPage > 100 {
		filter.PerPage = 100
	}

	orders, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}

	return orders, total, nil
}

// UpdateOrder applies a partial update to an order: customer fields, then
// status, then lines. The status transition and the line reconciliation each
// run in their own transaction and each settles stock before the next step
// sees the order.
func (s *OrderService) UpdateOrder(ctx context.Context, id uuid.UUID, req domain.UpdateOrderRequest) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order for update: %w", err)
	}

	if req.CustomerName != nil || req.CustomerEmail != nil || req.Address != nil {
		if req.CustomerName != nil {
			order.CustomerName = *req.CustomerName
		}
		if req.CustomerEmail != nil {
			order.CustomerEmail = *req.CustomerEmail
		}
		if req.Address != nil {
			order.Address = *req.Address
		}
		if err := s.repo.UpdateCustomer(ctx, order); err != nil {
			return nil, fmt.Errorf("update order customer: %w", err)
		}
	}

	stockMoved := false

	if req.Status != nil && *req.Status != order.Status {
		if !req.Status.Valid() {
			return nil, apperrors.InvalidInput(fmt.Sprintf("invalid order status %d", int(*req.Status)))
		}
		oldStatus := order.Status

		order, err = s.repo.ChangeStatus(ctx, id, *req.Status)
		if err != nil {
			return nil, fmt.Errorf("change order status: %w", err)
		}
		stockMoved = true

		if err := s.producer.PublishOrderStatusChanged(ctx, id.String(), oldStatus, order.Status); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish order.status_changed event",
				slog.String("order_id", id.String()),
				slog.String("error", err.Error()),
			)
		}

		s.logger.InfoContext(ctx, "order status changed",
			slog.String("order_id", id.String()),
			slog.String("old_status", oldStatus.String()),
			slog.String("new_status", order.Status.String()),
		)
	}

	if req.Lines != nil {
		order, err = s.repo.ReconcileLines(ctx, id, req.Lines)
		if err != nil {
			return nil, fmt.Errorf("reconcile order lines: %w", err)
		}
		stockMoved = true

		if err := s.producer.PublishOrderUpdated(ctx, order); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish order.updated event",
				slog.String("order_id", id.String()),
				slog.String("error", err.Error()),
			)
		}

		s.logger.InfoContext(ctx, "order lines reconciled",
			slog.String("order_id", id.String()),
			slog.Int("line_count", len(order.Lines)),
			slog.Int64("total_price", order.TotalPrice),
		)
	}

	if stockMoved {
		s.invalidateMenu(ctx)
	}

	return order, nil
}

// DeleteOrder removes an order, returning its stock if the order still held
// any.
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	if err := s.producer.PublishOrderDeleted(ctx, id.String()); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order.deleted event",
			slog.String("order_id", id.String()),
			slog.String("error", err.Error()),
		)
	}

	s.invalidateMenu(ctx)

	s.logger.InfoContext(ctx, "order deleted",
		slog.String("order_id", id.String()),
	)

	return nil
}

func (s *OrderService) invalidateMenu(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.WarnContext(ctx, "menu cache invalidation failed",
			slog.String("error", err.Error()),
		)
	}
}
