package order

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"restaurant-ops/internal/api"
	"restaurant-ops/internal/apperrors"
	"restaurant-ops/internal/logger"
	"restaurant-ops/internal/models"
)

// Handler serves the order endpoints.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new order handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Create handles POST /orders.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := api.GetRequestID(r.Context())

	var req models.CreateOrderRequest
	if !api.DecodeJSON(w, r, &req) {
		return
	}

	order, err := h.service.PlaceOrder(r.Context(), &req, requestID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidInput):
			h.logger.Error("validation_failed", "Order request validation failed", requestID, err, map[string]interface{}{
				"customer_phone": req.CustomerPhone,
			})
			api.WriteError(w, r, http.StatusBadRequest, "invalid_input", err.Error())
		case errors.Is(err, apperrors.ErrItemNotFound):
			h.logger.Error("order_creation_failed", "Cart references unknown menu item", requestID, err, nil)
			api.WriteError(w, r, http.StatusInternalServerError, "item_not_found", "menu item not found")
		default:
			h.logger.Error("order_creation_failed", "Failed to place order", requestID, err, map[string]interface{}{
				"customer_phone": req.CustomerPhone,
			})
			api.WriteError(w, r, http.StatusInternalServerError, "internal_error", "failed to place order")
		}
		return
	}

	api.WriteJSON(w, http.StatusCreated, models.CreateOrderResponse{
		ID:                  order.ID,
		Message:             "Order placed successfully!",
		TotalAmount:         order.TotalAmount,
		LoyaltyPointsEarned: order.LoyaltyPointsEarned,
		Status:              string(order.Status),
	})
}

// List handles GET /orders.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		h.logger.Error("order_list_failed", "Failed to list orders", api.GetRequestID(r.Context()), err, nil)
		api.WriteError(w, r, http.StatusInternalServerError, "internal_error", "failed to list orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	api.WriteJSON(w, http.StatusOK, orders)
}

// UpdateStatus handles PUT /orders/{id}/status.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	requestID := api.GetRequestID(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		api.WriteError(w, r, http.StatusBadRequest, "invalid_input", "invalid order id")
		return
	}

	var req models.UpdateOrderStatusRequest
	if !api.DecodeJSON(w, r, &req) {
		return
	}

	if err := h.service.UpdateStatus(r.Context(), id, &req, requestID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidInput):
			api.WriteError(w, r, http.StatusBadRequest, "invalid_input", err.Error())
		case errors.Is(err, apperrors.ErrNotFound):
			api.WriteError(w, r, http.StatusNotFound, "not_found", "order not found")
		default:
			h.logger.Error("status_update_failed", "Failed to update order status", requestID, err, map[string]interface{}{
				"order_id": id,
			})
			api.WriteError(w, r, http.StatusInternalServerError, "internal_error", "failed to update order status")
		}
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"message": "Status updated"})
}
