package product

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

var seedNames = []string{"Computer", "Printer", "Smartphone", "Tablet", "Monitor", "Keyboard", "Headset", "Router"}

// Seed inserts n demo products with random prices in [10.00, 5000.00) when the
// table is empty. Names cycle through seedNames and get a numeric suffix once
// the list is exhausted.
func Seed(ctx context.Context, repo Repository, n int, rnd *rand.Rand) int {
	existing, err := repo.Count(ctx)
	if err != nil {
		log.Printf("[seed] products: count failed: %v", err)
		return 0
	}
	if existing > 0 {
		log.Printf("[seed] products: %d rows present, skipping", existing)
		return 0
	}

	created := 0
	for i := 0; i < n; i++ {
		name := seedNames[i%len(seedNames)]
		if i >= len(seedNames) {
			name = fmt.Sprintf("%s %d", name, i/len(seedNames)+1)
		}
		p := &Product{
			Name:  name,
			Price: decimal.New(int64(1000+rnd.IntN(499000)), -2),
		}
		if err := repo.Create(ctx, p); err != nil {
			log.Printf("[seed] products: create %q: %v", p.Name, err)
			continue
		}
		created++
	}
	log.Printf("[seed] products: created %d", created)
	return created
}
