package billing

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

type Service struct {
	repo     Repository
	resolver Resolver
	workers  int
}

// NewService wires the aggregation path. workers bounds concurrent product
// resolutions per bill; 1 or less resolves items one by one in order.
func NewService(repo Repository, resolver Resolver, workers int) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{repo: repo, resolver: resolver, workers: workers}
}

// GetBill loads the bill and attaches its customer and every item's product.
// Any failure fails the whole call and no bill is returned.
func (s *Service) GetBill(ctx context.Context, id int64) (*Bill, error) {
	bill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &NotFoundError{Entity: "bill", ID: id}
		}
		return nil, err
	}

	customer, err := s.resolver.ResolveCustomer(ctx, bill.CustomerID)
	if err != nil {
		return nil, err
	}

	products, err := s.resolveProducts(ctx, bill.ProductItems)
	if err != nil {
		return nil, err
	}

	bill.Customer = customer
	for i := range bill.ProductItems {
		bill.ProductItems[i].Product = products[i]
	}
	return bill, nil
}

// resolveProducts returns one product per item, in item order. Repeated
// product IDs are resolved once per item.
func (s *Service) resolveProducts(ctx context.Context, items []ProductItem) ([]*Product, error) {
	out := make([]*Product, len(items))

	if s.workers == 1 || len(items) < 2 {
		for i, it := range items {
			p, err := s.resolver.ResolveProduct(ctx, it.ProductID)
			if err != nil {
				return nil, err
			}
			out[i] = p
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, it := range items {
		g.Go(func() error {
			// first error cancels gctx; queued items stop here
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := s.resolver.ResolveProduct(gctx, it.ProductID)
			if err != nil {
				return err
			}
			out[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) ListBills(ctx context.Context, limit, offset int) ([]Bill, int, error) {
	bills, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return bills, total, nil
}

func (s *Service) DeleteBill(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Entity: "bill", ID: id}
	}
	return nil
}
