package order

import (
	"context"
	"fmt"
	"strings"

	"restaurant-ops/internal/apperrors"
	"restaurant-ops/internal/database"
	"restaurant-ops/internal/models"
)

// PostgresStore persists orders in PostgreSQL.
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates an order store backed by the database pool.
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Resolve all distinct item ids in one lookup. Prices read here are the
	// snapshot the whole order is built from.
	itemIDs := make([]int, 0, len(req.Items))
	seen := make(map[int]bool, len(req.Items))
	for _, line := range req.Items {
		if !seen[line.ID] {
			seen[line.ID] = true
			itemIDs = append(itemIDs, line.ID)
		}
	}

	rows, err := tx.Query(ctx, `
		SELECT id, name, price
		FROM menu_items
		WHERE id = ANY($1::int[])`, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to look up menu items: %w", err)
	}

	catalog := make(map[int]pricedItem, len(itemIDs))
	for rows.Next() {
		var id int
		var item pricedItem
		if err := rows.Scan(&id, &item.Name, &item.Price); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		catalog[id] = item
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	totalAmount, err := cartTotal(req.Items, catalog)
	if err != nil {
		return nil, err
	}
	pointsEarned := loyaltyPoints(totalAmount)

	order := &models.Order{
		CustomerName:        req.CustomerName,
		CustomerPhone:       req.CustomerPhone,
		TotalAmount:         totalAmount,
		Status:              models.StatusNew,
		LoyaltyPointsEarned: pointsEarned,
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (customer_name, customer_phone, total_amount, loyalty_points_earned)
		VALUES ($1, $2, $3, $4)
		RETURNING id, order_date, status`,
		req.CustomerName, req.CustomerPhone, totalAmount, pointsEarned,
	).Scan(&order.ID, &order.OrderDate, &order.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	for _, line := range req.Items {
		item := catalog[line.ID]
		orderItem := models.OrderItem{
			OrderID:         order.ID,
			ItemID:          line.ID,
			ItemName:        item.Name,
			Quantity:        line.Quantity,
			Price:           item.Price,
			SpecialRequests: line.SpecialRequests,
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, item_id, item_name, quantity, price, special_requests)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			orderItem.OrderID, orderItem.ItemID, orderItem.ItemName,
			orderItem.Quantity, orderItem.Price, orderItem.SpecialRequests,
		).Scan(&orderItem.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert order item: %w", err)
		}

		order.Items = append(order.Items, orderItem)
	}

	// Single-statement upsert keeps the loyalty merge atomic: two concurrent
	// orders for one phone number both land their increment. The existing
	// customer's name is not touched on conflict.
	customerName := strings.TrimSpace(req.CustomerName)
	if customerName == "" {
		customerName = "Guest"
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO customers (name, phone, loyalty_points)
		VALUES ($1, $2, $3)
		ON CONFLICT (phone) DO UPDATE
		SET loyalty_points = customers.loyalty_points + EXCLUDED.loyalty_points`,
		customerName, req.CustomerPhone, pointsEarned,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to merge loyalty points: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return order, nil
}

func (s *PostgresStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	sql := `
		SELECT o.id, o.customer_name, o.customer_phone, o.order_date,
		       o.total_amount, o.status, o.loyalty_points_earned,
		       oi.id, oi.item_id, oi.item_name, oi.quantity, oi.price, oi.special_requests
		FROM orders o
		LEFT JOIN order_items oi ON o.id = oi.order_id
		ORDER BY o.order_date DESC, o.id DESC, oi.id`

	rows, err := s.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	index := make(map[int]int)

	for rows.Next() {
		var o models.Order
		var itemID, refItemID, quantity *int
		var itemName *string
		var price *float64
		var specialRequests *string

		err := rows.Scan(
			&o.ID, &o.CustomerName, &o.CustomerPhone, &o.OrderDate,
			&o.TotalAmount, &o.Status, &o.LoyaltyPointsEarned,
			&itemID, &refItemID, &itemName, &quantity, &price, &specialRequests,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}

		pos, ok := index[o.ID]
		if !ok {
			o.Items = []models.OrderItem{}
			orders = append(orders, o)
			pos = len(orders) - 1
			index[o.ID] = pos
		}

		if itemID != nil {
			orders[pos].Items = append(orders[pos].Items, models.OrderItem{
				ID:              *itemID,
				OrderID:         o.ID,
				ItemID:          *refItemID,
				ItemName:        *itemName,
				Quantity:        *quantity,
				Price:           *price,
				SpecialRequests: specialRequests,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return orders, nil
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, id int, status string) error {
	result, err := s.db.Pool.Exec(ctx, `
		UPDATE orders
		SET status = $1
		WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update order %d status: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
