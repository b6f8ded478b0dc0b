package order

import (
	"context"
	"time"

	"restaurant-ops/internal/apperrors"
	"restaurant-ops/internal/messaging"
	"restaurant-ops/internal/models"
)

// fakeStore is an in-memory Store honoring the same contract as the
// Postgres implementation: all-or-nothing creation with price snapshots and
// an atomic loyalty merge.
type fakeStore struct {
	catalog   map[int]pricedItem
	orders    []*models.Order
	customers map[string]int
	nextID    int
}

func newFakeStore(catalog map[int]pricedItem) *fakeStore {
	return &fakeStore{
		catalog:   catalog,
		customers: make(map[string]int),
	}
}

func (f *fakeStore) CreateOrder(_ context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	total, err := cartTotal(req.Items, f.catalog)
	if err != nil {
		return nil, err
	}
	points := loyaltyPoints(total)

	f.nextID++
	order := &models.Order{
		ID:                  f.nextID,
		CustomerName:        req.CustomerName,
		CustomerPhone:       req.CustomerPhone,
		OrderDate:           time.Now().UTC(),
		TotalAmount:         total,
		Status:              models.StatusNew,
		LoyaltyPointsEarned: points,
	}
	for _, line := range req.Items {
		item := f.catalog[line.ID]
		order.Items = append(order.Items, models.OrderItem{
			OrderID:         order.ID,
			ItemID:          line.ID,
			ItemName:        item.Name,
			Quantity:        line.Quantity,
			Price:           item.Price,
			SpecialRequests: line.SpecialRequests,
		})
	}

	f.orders = append(f.orders, order)
	f.customers[req.CustomerPhone] += points
	return order, nil
}

func (f *fakeStore) ListOrders(_ context.Context) ([]models.Order, error) {
	orders := make([]models.Order, 0, len(f.orders))
	for i := len(f.orders) - 1; i >= 0; i-- {
		orders = append(orders, *f.orders[i])
	}
	return orders, nil
}

func (f *fakeStore) UpdateStatus(_ context.Context, id int, status string) error {
	for _, o := range f.orders {
		if o.ID == id {
			o.Status = models.OrderStatus(status)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// fakePublisher records published events.
type fakePublisher struct {
	created       []*messaging.OrderCreatedEvent
	statusChanged []*messaging.StatusChangedEvent
}

func (f *fakePublisher) PublishOrderCreated(_ context.Context, event *messaging.OrderCreatedEvent) error {
	f.created = append(f.created, event)
	return nil
}

func (f *fakePublisher) PublishStatusChanged(_ context.Context, event *messaging.StatusChangedEvent) error {
	f.statusChanged = append(f.statusChanged, event)
	return nil
}

func testCatalog() map[int]pricedItem {
	return map[int]pricedItem{
		1: {Name: "Samosa", Price: 120.00},
		2: {Name: "Roti", Price: 40.00},
		3: {Name: "Dal Makhani", Price: 350.00},
	}
}
