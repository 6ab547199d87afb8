package billing

import (
	"context"
	"log"
	"math/rand/v2"
	"time"
)

// Seed creates one bill per known customer, each with one item per known
// product and a random quantity in [1,10]. It runs only when no bills exist
// and never fails the caller: problems are logged.
func Seed(ctx context.Context, repo Repository, dir Directory, rnd *rand.Rand) int {
	existing, err := repo.Count(ctx)
	if err != nil {
		log.Printf("[seed] bills: count failed: %v", err)
		return 0
	}
	if existing > 0 {
		log.Printf("[seed] bills: %d rows present, skipping", existing)
		return 0
	}

	customers, err := dir.ListCustomers(ctx)
	if err != nil {
		log.Printf("[seed] bills: list customers: %v", err)
		return 0
	}
	products, err := dir.ListProducts(ctx)
	if err != nil {
		log.Printf("[seed] bills: list products: %v", err)
		return 0
	}

	created := 0
	for _, c := range customers {
		b := &Bill{
			BillingDate:  time.Now().UTC(),
			CustomerID:   c.ID,
			ProductItems: make([]ProductItem, 0, len(products)),
		}
		for _, p := range products {
			b.ProductItems = append(b.ProductItems, ProductItem{
				ProductID: p.ID,
				Quantity:  1 + rnd.IntN(10),
				UnitPrice: p.Price,
			})
		}
		if err := repo.Save(ctx, b); err != nil {
			log.Printf("[seed] bills: customer=%d: %v", c.ID, err)
			continue
		}
		created++
	}
	log.Printf("[seed] bills: created %d (customers=%d products=%d)", created, len(customers), len(products))
	return created
}

// SeedWithRetry runs Seed and, when nothing was created, tries once more
// after delay. Peers started alongside billing may not be answering yet.
func SeedWithRetry(ctx context.Context, repo Repository, dir Directory, rnd *rand.Rand, delay time.Duration) int {
	if n := Seed(ctx, repo, dir, rnd); n > 0 {
		return n
	}
	log.Printf("[seed] bills: retrying in %s", delay)
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return 0
	case <-t.C:
	}
	return Seed(ctx, repo, dir, rnd)
}
