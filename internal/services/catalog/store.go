// Package catalog serves the menu and the table registry. Both are
// read-only reference data seeded by migrations.
package catalog

import (
	"context"

	"restaurant-ops/internal/models"
)

// Store reads catalog reference data.
type Store interface {
	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)
	ListTables(ctx context.Context) ([]models.Table, error)
}
