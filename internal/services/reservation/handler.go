package reservation

import (
	"errors"
	"net/http"

	"restaurant-ops/internal/api"
	"restaurant-ops/internal/apperrors"
	"restaurant-ops/internal/logger"
	"restaurant-ops/internal/models"
)

// Handler serves the reservation endpoints.
type Handler struct {
	store  Store
	logger *logger.Logger
}

// NewHandler creates a new reservation handler.
func NewHandler(store Store, log *logger.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: log,
	}
}

// List handles GET /reservations.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("reservation_list_failed", "Failed to list reservations", api.GetRequestID(r.Context()), err, nil)
		api.WriteError(w, r, http.StatusInternalServerError, "internal_error", "failed to list reservations")
		return
	}
	if reservations == nil {
		reservations = []models.Reservation{}
	}

	api.WriteJSON(w, http.StatusOK, reservations)
}

// Create handles POST /reservations.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := api.GetRequestID(r.Context())

	var req models.CreateReservationRequest
	if !api.DecodeJSON(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Error("validation_failed", "Reservation request validation failed", requestID, err, nil)
		api.WriteError(w, r, http.StatusBadRequest, "invalid_input", err.Error())
		return
	}

	id, err := h.store.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) {
			api.WriteError(w, r, http.StatusBadRequest, "invalid_input", err.Error())
			return
		}
		h.logger.Error("reservation_create_failed", "Failed to create reservation", requestID, err, map[string]interface{}{
			"customer_phone": req.CustomerPhone,
		})
		api.WriteError(w, r, http.StatusInternalServerError, "internal_error", "failed to create reservation")
		return
	}

	h.logger.Info("reservation_created", "Reservation created", requestID, map[string]interface{}{
		"reservation_id": id,
	})

	api.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      id,
		"message": "Reservation created!",
	})
}
