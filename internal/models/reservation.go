package models

import (
	"strings"

	"restaurant-ops/internal/apperrors"
)

// Reservation is a booking request against a table. TableNumber is resolved
// from the table registry at read time and is null when no table was chosen.
type Reservation struct {
	ID              int     `json:"id" db:"id"`
	CustomerName    string  `json:"customer_name" db:"customer_name"`
	CustomerPhone   string  `json:"customer_phone" db:"customer_phone"`
	ReservationDate string  `json:"reservation_date" db:"reservation_date"`
	ReservationTime string  `json:"reservation_time" db:"reservation_time"`
	NumberOfGuests  int     `json:"number_of_guests" db:"number_of_guests"`
	TableID         *int    `json:"table_id" db:"table_id"`
	Status          string  `json:"status" db:"status"`
	TableNumber     *string `json:"table_number"`
}

// CreateReservationRequest is the body of POST /reservations.
type CreateReservationRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	NumberOfGuests  int    `json:"number_of_guests"`
	TableID         *int   `json:"table_id,omitempty"`
}

// Validate checks the reservation request. Capacity and double-booking are
// deliberately not checked: any table may be reserved for any slot.
func (req *CreateReservationRequest) Validate() error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return apperrors.ValidationError{Field: "customer_name", Message: "customer name is required"}
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return apperrors.ValidationError{Field: "customer_phone", Message: "customer phone is required"}
	}
	if strings.TrimSpace(req.ReservationDate) == "" {
		return apperrors.ValidationError{Field: "reservation_date", Message: "reservation date is required"}
	}
	if strings.TrimSpace(req.ReservationTime) == "" {
		return apperrors.ValidationError{Field: "reservation_time", Message: "reservation time is required"}
	}
	if req.NumberOfGuests < 1 {
		return apperrors.ValidationError{Field: "number_of_guests", Message: "number of guests must be at least 1"}
	}
	if req.TableID != nil && *req.TableID < 1 {
		return apperrors.ValidationError{Field: "table_id", Message: "table id must be positive"}
	}
	return nil
}
