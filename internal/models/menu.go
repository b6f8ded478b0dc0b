package models

// MenuItem is a priced catalog entry. Reference data: mutated only by
// administrative reseeding, never by the order workflow.
type MenuItem struct {
	ID          int     `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Price       float64 `json:"price" db:"price"`
	Category    string  `json:"category" db:"category"`
	ImageURL    *string `json:"image_url" db:"image_url"`
}

// Table is a seating resource with a fixed capacity.
type Table struct {
	ID          int    `json:"id" db:"id"`
	TableNumber string `json:"table_number" db:"table_number"`
	Capacity    int    `json:"capacity" db:"capacity"`
}
