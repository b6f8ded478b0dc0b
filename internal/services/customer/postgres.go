package customer

import (
	"context"
	"fmt"

	"restaurant-ops/internal/apperrors"
	"restaurant-ops/internal/database"
	"restaurant-ops/internal/models"
)

// PostgresStore reads customers from PostgreSQL.
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates a customer store backed by the database pool.
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Search(ctx context.Context, query string) ([]models.Customer, error) {
	sql := `
		SELECT id, name, phone, email, loyalty_points
		FROM customers
		WHERE name ILIKE '%' || $1 || '%' OR phone = $1 OR email = $1
		ORDER BY id`

	rows, err := s.db.Query(ctx, sql, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.LoyaltyPoints)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	if len(customers) == 0 {
		return nil, apperrors.ErrNotFound
	}

	return customers, nil
}
