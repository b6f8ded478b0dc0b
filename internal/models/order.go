package models

import (
	"fmt"
	"strings"
	"time"

	"restaurant-ops/internal/apperrors"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusNew       OrderStatus = "New"
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
)

// IsActive reports whether the status belongs to the kitchen's active
// partition. Anything outside New and Preparing counts as completed or
// archived, including statuses this package does not name.
func (s OrderStatus) IsActive() bool {
	return s == StatusNew || s == StatusPreparing
}

// maxOrderLines bounds the cart size accepted in a single order.
const maxOrderLines = 50

// OrderItem is one line of an order. ItemName and Price are snapshots taken
// at order time: later menu changes must not alter historical orders.
type OrderItem struct {
	ID              int     `json:"id" db:"id"`
	OrderID         int     `json:"order_id" db:"order_id"`
	ItemID          int     `json:"item_id" db:"item_id"`
	ItemName        string  `json:"item_name" db:"item_name"`
	Quantity        int     `json:"quantity" db:"quantity"`
	Price           float64 `json:"price" db:"price"`
	SpecialRequests *string `json:"special_requests" db:"special_requests"`
}

// Order is a placed customer order with its line items. TotalAmount and
// LoyaltyPointsEarned are computed once at creation and never recomputed.
type Order struct {
	ID                  int         `json:"id" db:"id"`
	CustomerName        string      `json:"customer_name" db:"customer_name"`
	CustomerPhone       string      `json:"customer_phone" db:"customer_phone"`
	OrderDate           time.Time   `json:"order_date" db:"order_date"`
	TotalAmount         float64     `json:"total_amount" db:"total_amount"`
	Status              OrderStatus `json:"status" db:"status"`
	LoyaltyPointsEarned int         `json:"loyalty_points_earned" db:"loyalty_points_earned"`
	Items               []OrderItem `json:"items"`
}

// IsActive reports whether the order belongs to the active kitchen partition.
func (o *Order) IsActive() bool {
	return o.Status.IsActive()
}

// OrderLineRequest names a menu item, a quantity and an optional note.
type OrderLineRequest struct {
	ID              int     `json:"id"`
	Quantity        int     `json:"quantity"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	Items         []OrderLineRequest `json:"items"`
}

// Validate rejects bad carts before any database access.
func (req *CreateOrderRequest) Validate() error {
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return apperrors.ValidationError{Field: "customer_phone", Message: "phone number is required"}
	}
	if len(req.Items) == 0 {
		return apperrors.ValidationError{Field: "items", Message: "items cannot be empty"}
	}
	if len(req.Items) > maxOrderLines {
		return apperrors.ValidationError{
			Field:   "items",
			Message: fmt.Sprintf("a maximum of %d items is allowed", maxOrderLines),
		}
	}
	for i, item := range req.Items {
		if item.ID < 1 {
			return apperrors.ValidationError{
				Field:   fmt.Sprintf("items[%d].id", i),
				Message: "item id must be positive",
			}
		}
		if item.Quantity < 1 {
			return apperrors.ValidationError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "item quantity must be greater than 0",
			}
		}
	}
	return nil
}

// CreateOrderResponse is returned after a successful order placement.
type CreateOrderResponse struct {
	ID                  int     `json:"id"`
	Message             string  `json:"message"`
	TotalAmount         float64 `json:"total_amount"`
	LoyaltyPointsEarned int     `json:"loyalty_points_earned"`
	Status              string  `json:"status"`
}

// UpdateOrderStatusRequest is the body of PUT /orders/{id}/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// Validate requires a non-blank status. The transition itself is not
// validated: the board overwrites the status unconditionally.
func (req *UpdateOrderStatusRequest) Validate() error {
	if strings.TrimSpace(req.Status) == "" {
		return apperrors.ValidationError{Field: "status", Message: "status is required"}
	}
	return nil
}
