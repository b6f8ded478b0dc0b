// Package reservation manages table booking requests. Double-booking is
// not constrained: any table may be reserved any number of times for any
// overlapping slot.
package reservation

import (
	"context"

	"restaurant-ops/internal/models"
)

// Store persists and lists reservations.
type Store interface {
	// List returns all reservations ordered by date then time, each
	// annotated with its table's display number when a table was chosen.
	List(ctx context.Context) ([]models.Reservation, error)

	// Create inserts a reservation and returns its new id.
	Create(ctx context.Context, req *models.CreateReservationRequest) (int, error)
}
