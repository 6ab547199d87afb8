// Package billing owns bills and their product items and assembles hydrated
// bill views from the customer and product services.
package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is the billing service's read-only view of a customer.
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Product is the billing service's read-only view of a product.
type Product struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type Bill struct {
	ID          int64     `json:"id"`
	BillingDate time.Time `json:"billingDate"`
	CustomerID  int64     `json:"customerId"`
	// Customer is attached on read and never persisted.
	Customer     *Customer     `json:"customer,omitempty"`
	ProductItems []ProductItem `json:"productItems"`
}

type ProductItem struct {
	ID        int64 `json:"id"`
	BillID    int64 `json:"-"`
	ProductID int64 `json:"productId"`
	// Product is attached on read and never persisted.
	Product  *Product `json:"product,omitempty"`
	Quantity int      `json:"quantity"`
	// UnitPrice is the product price when the item was created.
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// ListResponse represents a page of bills without customer/product data.
// swagger:model
type ListResponse struct {
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
	Total  int    `json:"total"`
	Items  []Bill `json:"items"`
}

var Schema = []string{`
CREATE TABLE IF NOT EXISTS bills (
	id           BIGSERIAL PRIMARY KEY,
	billing_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	customer_id  BIGINT NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS product_items (
	id         BIGSERIAL PRIMARY KEY,
	bill_id    BIGINT NOT NULL REFERENCES bills(id) ON DELETE CASCADE,
	product_id BIGINT NOT NULL,
	quantity   INT NOT NULL CHECK (quantity > 0),
	unit_price NUMERIC(12,2) NOT NULL
)`, `
CREATE INDEX IF NOT EXISTS product_items_bill_id_idx ON product_items (bill_id)`,
}
