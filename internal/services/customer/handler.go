package customer

import (
	"errors"
	"net/http"
	"strings"

	"restaurant-ops/internal/api"
	"restaurant-ops/internal/apperrors"
	"restaurant-ops/internal/logger"
)

// Handler serves the customer search endpoint.
type Handler struct {
	store  Store
	logger *logger.Logger
}

// NewHandler creates a new customer handler.
func NewHandler(store Store, log *logger.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: log,
	}
}

// Search handles GET /customers/search?query=.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	requestID := api.GetRequestID(r.Context())

	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		api.WriteError(w, r, http.StatusBadRequest, "invalid_input", "query is required")
		return
	}

	customers, err := h.store.Search(r.Context(), query)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			api.WriteError(w, r, http.StatusNotFound, "not_found", "Customer not found.")
			return
		}
		h.logger.Error("customer_search_failed", "Failed to search customers", requestID, err, map[string]interface{}{
			"query": query,
		})
		api.WriteError(w, r, http.StatusInternalServerError, "internal_error", "failed to search customers")
		return
	}

	api.WriteJSON(w, http.StatusOK, customers)
}
