package order

import (
	"fmt"
	"math"

	"restaurant-ops/internal/apperrors"
	"restaurant-ops/internal/models"
)

// pricedItem is a menu item's name and price as read inside the placement
// transaction. These values are snapshotted onto the order lines.
type pricedItem struct {
	Name  string
	Price float64
}

// cartTotal sums price*quantity over the cart using the priced lookup.
// Every cart line must resolve; a miss aborts the whole order.
func cartTotal(items []models.OrderLineRequest, catalog map[int]pricedItem) (float64, error) {
	var total float64
	for _, line := range items {
		item, ok := catalog[line.ID]
		if !ok {
			return 0, fmt.Errorf("item %d: %w", line.ID, apperrors.ErrItemNotFound)
		}
		total += item.Price * float64(line.Quantity)
	}
	return total, nil
}

// loyaltyPoints converts spend into points: one point per 100 currency
// units, fractional remainder discarded and never carried over.
func loyaltyPoints(total float64) int {
	return int(math.Floor(total / 100))
}
