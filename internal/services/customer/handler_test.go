package customer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"restaurant-ops/internal/apperrors"
	"restaurant-ops/internal/logger"
	"restaurant-ops/internal/models"
)

type fakeStore struct {
	customers []models.Customer
	err       error
}

func (f *fakeStore) Search(_ context.Context, query string) ([]models.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}

	var matches []models.Customer
	for _, c := range f.customers {
		nameHit := strings.Contains(strings.ToLower(c.Name), strings.ToLower(query))
		emailHit := c.Email != nil && *c.Email == query
		if nameHit || c.Phone == query || emailHit {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return matches, nil
}

func TestSearchHandler(t *testing.T) {
	email := "jane@example.com"
	store := &fakeStore{customers: []models.Customer{
		{ID: 1, Name: "Jane Doe", Phone: "555-0102", Email: &email, LoyaltyPoints: 12},
		{ID: 2, Name: "John Smith", Phone: "555-0103", LoyaltyPoints: 3},
	}}
	handler := NewHandler(store, logger.New("customer-test"))

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantCount  int
	}{
		{"name substring", "jane", http.StatusOK, 1},
		{"exact phone", "555-0103", http.StatusOK, 1},
		{"exact email", "jane@example.com", http.StatusOK, 1},
		{"partial phone is not a match", "555", http.StatusNotFound, 0},
		{"no match", "nobody", http.StatusNotFound, 0},
		{"blank query", "", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/customers/search?query="+tt.query, nil)
			rec := httptest.NewRecorder()
			handler.Search(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}

			if tt.wantStatus == http.StatusOK && tt.wantCount > 0 {
				var customers []models.Customer
				if err := json.Unmarshal(rec.Body.Bytes(), &customers); err != nil {
					t.Fatalf("failed to decode customers: %v", err)
				}
				if len(customers) != tt.wantCount {
					t.Errorf("got %d customers, want %d", len(customers), tt.wantCount)
				}
			}
		})
	}
}

func TestSearchHandler_StoreFailure(t *testing.T) {
	handler := NewHandler(&fakeStore{err: errors.New("connection refused")}, logger.New("customer-test"))

	req := httptest.NewRequest(http.MethodGet, "/customers/search?query=jane", nil)
	rec := httptest.NewRecorder()
	handler.Search(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Error("internal error detail must not leak to the client")
	}
}
