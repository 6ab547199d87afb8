package product

import "github.com/shopspring/decimal"

type Product struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	// NUMERIC in Postgres, serialized as a JSON string to avoid rounding.
	Price decimal.Decimal `json:"price"`
}

// ListResponse represents a page of products.
// swagger:model
type ListResponse struct {
	// limit applied
	Limit int `json:"limit"`
	// offset applied
	Offset int `json:"offset"`
	// total rows in the table
	Total int       `json:"total"`
	Items []Product `json:"items"`
}

// CreateProductRequest payload of creation.
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	Name  string `json:"name"  binding:"required" example:"Computer"`
	Price string `json:"price" binding:"required" example:"1299.90"`
}

const Schema = `
CREATE TABLE IF NOT EXISTS products (
	id    BIGSERIAL PRIMARY KEY,
	name  TEXT NOT NULL,
	price NUMERIC(12,2) NOT NULL CHECK (price >= 0)
)`
