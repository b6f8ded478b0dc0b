package order

import (
	"errors"
	"testing"

	"restaurant-ops/internal/apperrors"
	"restaurant-ops/internal/models"
)

func TestCartTotal(t *testing.T) {
	catalog := map[int]pricedItem{
		1: {Name: "Samosa", Price: 120.00},
		2: {Name: "Roti", Price: 40.00},
		3: {Name: "Dal Makhani", Price: 350.00},
	}

	tests := []struct {
		name  string
		items []models.OrderLineRequest
		want  float64
	}{
		{
			name:  "single line",
			items: []models.OrderLineRequest{{ID: 1, Quantity: 2}},
			want:  240.00,
		},
		{
			name: "multiple lines",
			items: []models.OrderLineRequest{
				{ID: 1, Quantity: 1},
				{ID: 2, Quantity: 3},
				{ID: 3, Quantity: 1},
			},
			want: 590.00,
		},
		{
			name: "repeated item id",
			items: []models.OrderLineRequest{
				{ID: 2, Quantity: 1},
				{ID: 2, Quantity: 2},
			},
			want: 120.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cartTotal(tt.items, catalog)
			if err != nil {
				t.Fatalf("cartTotal returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("cartTotal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCartTotal_UnknownItem(t *testing.T) {
	catalog := map[int]pricedItem{1: {Name: "Samosa", Price: 120.00}}
	items := []models.OrderLineRequest{
		{ID: 1, Quantity: 1},
		{ID: 99, Quantity: 1},
	}

	_, err := cartTotal(items, catalog)
	if !errors.Is(err, apperrors.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestLoyaltyPoints(t *testing.T) {
	tests := []struct {
		total float64
		want  int
	}{
		{250, 2},
		{99, 0},
		{100.00, 1},
		{0, 0},
		{199.99, 1},
		{590, 5},
	}

	for _, tt := range tests {
		if got := loyaltyPoints(tt.total); got != tt.want {
			t.Errorf("loyaltyPoints(%v) = %d, want %d", tt.total, got, tt.want)
		}
	}
}
