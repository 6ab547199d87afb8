package customer

import (
	"context"
	"fmt"
	"log"
)

// Seed inserts n demo customers when the table is empty. Best effort: failures
// are logged and skipped.
func Seed(ctx context.Context, repo Repository, n int) int {
	existing, err := repo.Count(ctx)
	if err != nil {
		log.Printf("[seed] customers: count failed: %v", err)
		return 0
	}
	if existing > 0 {
		log.Printf("[seed] customers: %d rows present, skipping", existing)
		return 0
	}

	created := 0
	for i := 1; i <= n; i++ {
		c := &Customer{
			Name:  fmt.Sprintf("Customer %d", i),
			Email: fmt.Sprintf("customer%d@email.com", i),
		}
		if err := repo.Create(ctx, c); err != nil {
			log.Printf("[seed] customers: create %q: %v", c.Email, err)
			continue
		}
		created++
	}
	log.Printf("[seed] customers: created %d", created)
	return created
}
