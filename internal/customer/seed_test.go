package customer

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func init() {
	log.SetOutput(io.Discard)
}

type memRepo struct {
	rows     []Customer
	countErr error
	failOn   string
}

func (m *memRepo) Create(_ context.Context, c *Customer) error {
	if c.Email == m.failOn {
		return ErrAlreadyExists
	}
	c.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, *c)
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id int64) (*Customer, error) {
	for _, c := range m.rows {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memRepo) List(_ context.Context, limit, offset int) ([]Customer, error) {
	return m.rows, nil
}

func (m *memRepo) Count(context.Context) (int, error) { return len(m.rows), m.countErr }

func TestSeed_CreatesNumberedCustomers(t *testing.T) {
	repo := &memRepo{}

	n := Seed(context.Background(), repo, 10)

	assert.Equal(t, 10, n)
	assert.Len(t, repo.rows, 10)
	assert.Equal(t, "Customer 1", repo.rows[0].Name)
	assert.Equal(t, "customer10@email.com", repo.rows[9].Email)
}

func TestSeed_SkipsWhenPopulated(t *testing.T) {
	repo := &memRepo{rows: []Customer{{ID: 1, Name: "x", Email: "x@y.z"}}}

	assert.Zero(t, Seed(context.Background(), repo, 10))
	assert.Len(t, repo.rows, 1)
}

func TestSeed_BestEffort(t *testing.T) {
	repo := &memRepo{failOn: "customer2@email.com"}
	assert.Equal(t, 2, Seed(context.Background(), repo, 3))

	broken := &memRepo{countErr: errors.New("db down")}
	assert.Zero(t, Seed(context.Background(), broken, 3))
}
