package order

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"

	"restaurant-ops/internal/logger"
	"restaurant-ops/internal/messaging"
	"restaurant-ops/internal/models"
)

// EventPublisher publishes order lifecycle events after commit. A nil
// publisher disables publishing; client-facing status always stays
// poll-based regardless.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event *messaging.OrderCreatedEvent) error
	PublishStatusChanged(ctx context.Context, event *messaging.StatusChangedEvent) error
}

// Service implements order placement and the status board.
type Service struct {
	store     Store
	publisher EventPublisher
	logger    *logger.Logger
	sem       *semaphore.Weighted
}

// NewService creates an order service. maxConcurrent caps simultaneous
// placement transactions; publisher may be nil.
func NewService(store Store, publisher EventPublisher, log *logger.Logger, maxConcurrent int) *Service {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Service{
		store:     store,
		publisher: publisher,
		logger:    log,
		sem:       semaphore.NewWeighted(int64(maxConcurrent)),
	}
}

// PlaceOrder validates the request, runs the placement transaction and, on
// success, publishes an order-created event.
func (s *Service) PlaceOrder(ctx context.Context, req *models.CreateOrderRequest, requestID string) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.sem.Release(1)

	order, err := s.store.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("order_created", "Order placed", requestID, map[string]interface{}{
		"order_id":              order.ID,
		"total_amount":          order.TotalAmount,
		"loyalty_points_earned": order.LoyaltyPointsEarned,
	})

	if s.publisher != nil {
		event := &messaging.OrderCreatedEvent{
			OrderID:             order.ID,
			CustomerName:        order.CustomerName,
			CustomerPhone:       order.CustomerPhone,
			TotalAmount:         order.TotalAmount,
			LoyaltyPointsEarned: order.LoyaltyPointsEarned,
			Items:               order.Items,
			Timestamp:           time.Now().UTC(),
		}
		// Fire-and-forget: the order is already committed, a broker outage
		// must not fail the request.
		if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
			s.logger.Error("event_publish_failed", "Failed to publish order-created event", requestID, err, map[string]interface{}{
				"order_id": order.ID,
			})
		}
	}

	return order, nil
}

// ListOrders returns all orders newest-first with their line items.
func (s *Service) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.store.ListOrders(ctx)
}

// UpdateStatus overwrites an order's status and publishes a status-changed
// event. The transition is not validated.
func (s *Service) UpdateStatus(ctx context.Context, id int, req *models.UpdateOrderStatusRequest, requestID string) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.store.UpdateStatus(ctx, id, req.Status); err != nil {
		return err
	}

	s.logger.Info("order_status_updated", "Order status updated", requestID, map[string]interface{}{
		"order_id": id,
		"status":   req.Status,
	})

	if s.publisher != nil {
		event := &messaging.StatusChangedEvent{
			OrderID:   id,
			NewStatus: req.Status,
			ChangedBy: "kitchen",
			Timestamp: time.Now().UTC(),
		}
		if err := s.publisher.PublishStatusChanged(ctx, event); err != nil {
			s.logger.Error("event_publish_failed", "Failed to publish status-changed event", requestID, err, map[string]interface{}{
				"order_id": id,
			})
		}
	}

	return nil
}
