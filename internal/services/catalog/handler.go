package catalog

import (
	"net/http"

	"restaurant-ops/internal/api"
	"restaurant-ops/internal/logger"
	"restaurant-ops/internal/models"
)

// Handler serves the catalog endpoints.
type Handler struct {
	store  Store
	logger *logger.Logger
}

// NewHandler creates a new catalog handler.
func NewHandler(store Store, log *logger.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: log,
	}
}

// ListMenu handles GET /menu.
func (h *Handler) ListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListMenuItems(r.Context())
	if err != nil {
		h.logger.Error("menu_list_failed", "Failed to list menu items", api.GetRequestID(r.Context()), err, nil)
		api.WriteError(w, r, http.StatusInternalServerError, "internal_error", "failed to list menu items")
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}

	api.WriteJSON(w, http.StatusOK, items)
}

// ListTables handles GET /tables.
func (h *Handler) ListTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.store.ListTables(r.Context())
	if err != nil {
		h.logger.Error("tables_list_failed", "Failed to list tables", api.GetRequestID(r.Context()), err, nil)
		api.WriteError(w, r, http.StatusInternalServerError, "internal_error", "failed to list tables")
		return
	}
	if tables == nil {
		tables = []models.Table{}
	}

	api.WriteJSON(w, http.StatusOK, tables)
}
