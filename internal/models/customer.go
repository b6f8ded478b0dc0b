package models

// Customer is a loyalty ledger entry keyed by phone number. Created on the
// first order from a new phone number and never deleted by the core workflow.
type Customer struct {
	ID            int     `json:"id" db:"id"`
	Name          string  `json:"name" db:"name"`
	Phone         string  `json:"phone" db:"phone"`
	Email         *string `json:"email" db:"email"`
	LoyaltyPoints int     `json:"loyalty_points" db:"loyalty_points"`
}
