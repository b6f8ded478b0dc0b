// Package customer serves the loyalty ledger lookup used by staff.
package customer

import (
	"context"

	"restaurant-ops/internal/models"
)

// Store reads the customer ledger.
type Store interface {
	// Search matches query as a case-insensitive name substring, an exact
	// phone number or an exact email. Zero matches is apperrors.ErrNotFound,
	// distinct from a server failure.
	Search(ctx context.Context, query string) ([]models.Customer, error)
}
