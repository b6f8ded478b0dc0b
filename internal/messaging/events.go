package messaging

import (
	"time"

	"restaurant-ops/internal/models"
)

// Routing keys on the orders topic exchange.
const (
	RoutingKeyOrderCreated  = "kitchen.order_created"
	RoutingKeyStatusChanged = "kitchen.status_changed"
)

// OrderCreatedEvent announces a committed order to downstream consumers.
// Clients still learn about status by polling; this stream exists for
// integrations and audit, not for pushing state to the UI.
type OrderCreatedEvent struct {
	OrderID             int                `json:"order_id"`
	CustomerName        string             `json:"customer_name"`
	CustomerPhone       string             `json:"customer_phone"`
	TotalAmount         float64            `json:"total_amount"`
	LoyaltyPointsEarned int                `json:"loyalty_points_earned"`
	Items               []models.OrderItem `json:"items"`
	Timestamp           time.Time          `json:"timestamp"`
}

// StatusChangedEvent announces a staff status transition.
type StatusChangedEvent struct {
	OrderID   int       `json:"order_id"`
	NewStatus string    `json:"new_status"`
	ChangedBy string    `json:"changed_by"`
	Timestamp time.Time `json:"timestamp"`
}
