package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=repo.go -destination=mocks/mock_repo.go -package=mocks

type Repository interface {
	// GetByID returns the bill with its items, or ErrNotFound.
	GetByID(ctx context.Context, id int64) (*Bill, error)
	// Save inserts the bill and its items in one transaction and assigns IDs.
	Save(ctx context.Context, b *Bill) error
	List(ctx context.Context, limit, offset int) ([]Bill, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Save(ctx context.Context, b *Bill) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if b.BillingDate.IsZero() {
		b.BillingDate = time.Now().UTC()
	}
	if err := tx.QueryRow(ctx, `
    INSERT INTO bills (billing_date, customer_id)
    VALUES ($1,$2)
    RETURNING id
  `, b.BillingDate, b.CustomerID).Scan(&b.ID); err != nil {
		return err
	}

	for i := range b.ProductItems {
		it := &b.ProductItems[i]
		if it.Quantity <= 0 {
			return fmt.Errorf("item %d: quantity must be positive", i)
		}
		it.BillID = b.ID
		if err := tx.QueryRow(ctx, `
      INSERT INTO product_items (bill_id, product_id, quantity, unit_price)
      VALUES ($1,$2,$3,$4)
      RETURNING id
    `, b.ID, it.ProductID, it.Quantity, it.UnitPrice.StringFixed(2)).Scan(&it.ID); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var b Bill
	if err := r.db.QueryRow(ctx, `
    SELECT id, billing_date, customer_id
    FROM bills WHERE id=$1
  `, id).Scan(&b.ID, &b.BillingDate, &b.CustomerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
    SELECT id, bill_id, product_id, quantity, unit_price::text
    FROM product_items WHERE bill_id=$1
    ORDER BY id
  `, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	b.ProductItems = []ProductItem{}
	for rows.Next() {
		var (
			it    ProductItem
			price string
		)
		if err := rows.Scan(&it.ID, &it.BillID, &it.ProductID, &it.Quantity, &price); err != nil {
			return nil, err
		}
		if it.UnitPrice, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("item %d: bad unit price %q: %w", it.ID, price, err)
		}
		b.ProductItems = append(b.ProductItems, it)
	}
	return &b, rows.Err()
}

func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT id, billing_date, customer_id
    FROM bills
    ORDER BY id LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Bill{}
	for rows.Next() {
		b := Bill{ProductItems: []ProductItem{}}
		if err := rows.Scan(&b.ID, &b.BillingDate, &b.CustomerID); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Delete removes the bill; product_items rows go with it via ON DELETE CASCADE.
func (r *PGRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM bills WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PGRepo) Count(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bills`).Scan(&n)
	return n, err
}
