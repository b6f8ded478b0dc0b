package order

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"restaurant-ops/internal/api"
	"restaurant-ops/internal/logger"
	"restaurant-ops/internal/models"
)

func newTestRouter(store Store) *chi.Mux {
	log := logger.New("order-test")
	handler := NewHandler(NewService(store, nil, log, 10), log)

	router := chi.NewRouter()
	router.Get("/orders", handler.List)
	router.Post("/orders", handler.Create)
	router.Put("/orders/{id}/status", handler.UpdateStatus)
	return router
}

func TestCreateOrderHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "valid order",
			body:       `{"customer_name":"John","customer_phone":"555-0101","items":[{"id":1,"quantity":2},{"id":3,"quantity":1}]}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid json",
			body:       `{"customer_phone":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "missing phone",
			body:       `{"customer_name":"John","items":[{"id":1,"quantity":1}]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_input",
		},
		{
			name:       "empty cart",
			body:       `{"customer_phone":"555-0101","items":[]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_input",
		},
		{
			name:       "unknown menu item",
			body:       `{"customer_phone":"555-0101","items":[{"id":99,"quantity":1}]}`,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "item_not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(newFakeStore(testCatalog()))

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}

			if tt.wantCode != "" {
				var apiErr api.Error
				if err := json.Unmarshal(rec.Body.Bytes(), &apiErr); err != nil {
					t.Fatalf("failed to decode error body: %v", err)
				}
				if apiErr.Error != tt.wantCode {
					t.Errorf("error code = %q, want %q", apiErr.Error, tt.wantCode)
				}
			}
		})
	}
}

func TestCreateOrderHandler_ResponseBody(t *testing.T) {
	router := newTestRouter(newFakeStore(testCatalog()))

	body := `{"customer_phone":"555-0101","items":[{"id":1,"quantity":2},{"id":3,"quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}

	var resp models.CreateOrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TotalAmount != 590.00 {
		t.Errorf("total = %v, want 590.00", resp.TotalAmount)
	}
	if resp.LoyaltyPointsEarned != 5 {
		t.Errorf("points = %d, want 5", resp.LoyaltyPointsEarned)
	}
	if resp.Status != string(models.StatusNew) {
		t.Errorf("status = %q, want New", resp.Status)
	}
	if resp.ID == 0 {
		t.Error("expected non-zero order id")
	}
}

func TestListOrdersHandler(t *testing.T) {
	store := newFakeStore(testCatalog())
	router := newTestRouter(store)

	for _, body := range []string{
		`{"customer_phone":"555-0101","items":[{"id":1,"quantity":1}]}`,
		`{"customer_phone":"555-0102","items":[{"id":2,"quantity":1}]}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("setup order failed: %d", rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var orders []models.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &orders); err != nil {
		t.Fatalf("failed to decode orders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	// Newest first
	if orders[0].CustomerPhone != "555-0102" {
		t.Errorf("expected newest order first, got %q", orders[0].CustomerPhone)
	}
}

func TestUpdateStatusHandler(t *testing.T) {
	store := newFakeStore(testCatalog())
	router := newTestRouter(store)

	setup := httptest.NewRequest(http.MethodPost, "/orders",
		strings.NewReader(`{"customer_phone":"555-0101","items":[{"id":1,"quantity":1}]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, setup)
	if rec.Code != http.StatusCreated {
		t.Fatalf("setup order failed: %d", rec.Code)
	}

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{"valid update", "/orders/1/status", `{"status":"Preparing"}`, http.StatusOK},
		{"unknown order", "/orders/99/status", `{"status":"Ready"}`, http.StatusNotFound},
		{"bad id", "/orders/abc/status", `{"status":"Ready"}`, http.StatusBadRequest},
		{"blank status", "/orders/1/status", `{"status":""}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}

	// The overwrite is visible on the next listing.
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var orders []models.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &orders); err != nil {
		t.Fatalf("failed to decode orders: %v", err)
	}
	if orders[0].Status != models.StatusPreparing {
		t.Errorf("status after update = %q, want Preparing", orders[0].Status)
	}
}
