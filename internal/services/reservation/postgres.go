package reservation

import (
	"context"
	"fmt"

	"restaurant-ops/internal/database"
	"restaurant-ops/internal/models"
)

// PostgresStore persists reservations in PostgreSQL.
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates a reservation store backed by the database pool.
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) List(ctx context.Context) ([]models.Reservation, error) {
	sql := `
		SELECT r.id, r.customer_name, r.customer_phone,
		       r.reservation_date::text, r.reservation_time::text,
		       r.number_of_guests, r.table_id, r.status, t.table_number
		FROM reservations r
		LEFT JOIN tables t ON r.table_id = t.id
		ORDER BY r.reservation_date, r.reservation_time`

	rows, err := s.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []models.Reservation
	for rows.Next() {
		var res models.Reservation
		err := rows.Scan(
			&res.ID,
			&res.CustomerName,
			&res.CustomerPhone,
			&res.ReservationDate,
			&res.ReservationTime,
			&res.NumberOfGuests,
			&res.TableID,
			&res.Status,
			&res.TableNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return reservations, nil
}

func (s *PostgresStore) Create(ctx context.Context, req *models.CreateReservationRequest) (int, error) {
	sql := `
		INSERT INTO reservations (customer_name, customer_phone, reservation_date, reservation_time, number_of_guests, table_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int
	err := s.db.QueryRow(ctx, sql,
		req.CustomerName,
		req.CustomerPhone,
		req.ReservationDate,
		req.ReservationTime,
		req.NumberOfGuests,
		req.TableID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create reservation: %w", err)
	}

	return id, nil
}
