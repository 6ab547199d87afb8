// Package customer owns Customer records for the customer service.
package customer

type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ListResponse represents a page of customers.
// swagger:model
type ListResponse struct {
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
	Total  int        `json:"total"`
	Items  []Customer `json:"items"`
}

// CreateCustomerRequest payload of creation.
// swagger:model CreateCustomerRequest
type CreateCustomerRequest struct {
	Name  string `json:"name"  binding:"required"       example:"Customer 1"`
	Email string `json:"email" binding:"required,email" example:"customer1@email.com"`
}

const Schema = `
CREATE TABLE IF NOT EXISTS customers (
	id    BIGSERIAL PRIMARY KEY,
	name  TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE
)`
