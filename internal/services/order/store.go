// Package order implements the order placement workflow and the kitchen
// status board. Placement prices the cart against the current menu,
// persists the order with its line items and merges loyalty points into the
// customer ledger, all inside a single transaction.
package order

import (
	"context"

	"restaurant-ops/internal/models"
)

// Store persists orders.
type Store interface {
	// CreateOrder runs the placement transaction: price the cart, insert the
	// order and its lines with name/price snapshots, and merge loyalty
	// points into the customer ledger. Either everything commits or nothing
	// does. A cart line naming an unknown menu item returns
	// apperrors.ErrItemNotFound with no writes performed.
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error)

	// ListOrders returns all orders newest-first, each with its line items.
	ListOrders(ctx context.Context) ([]models.Order, error)

	// UpdateStatus overwrites an order's status unconditionally. An unknown
	// order id returns apperrors.ErrNotFound.
	UpdateStatus(ctx context.Context, id int, status string) error
}
