package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/billing-ecom/internal/customer"
)

func init() {
	gin.SetMode(gin.TestMode)
	log.SetOutput(io.Discard)
}

//
// ===== in-memory stub (implements customer.Repository) =====
//

type stubRepo struct {
	rows    []customer.Customer
	failing bool
}

func (s *stubRepo) Create(_ context.Context, c *customer.Customer) error {
	if s.failing {
		return errors.New("db down")
	}
	for _, r := range s.rows {
		if r.Email == c.Email {
			return customer.ErrAlreadyExists
		}
	}
	c.ID = int64(len(s.rows) + 1)
	s.rows = append(s.rows, *c)
	return nil
}

func (s *stubRepo) GetByID(_ context.Context, id int64) (*customer.Customer, error) {
	if s.failing {
		return nil, errors.New("db down")
	}
	for _, r := range s.rows {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, customer.ErrNotFound
}

func (s *stubRepo) List(_ context.Context, limit, offset int) ([]customer.Customer, error) {
	if s.failing {
		return nil, errors.New("db down")
	}
	if offset > len(s.rows) {
		return []customer.Customer{}, nil
	}
	end := offset + limit
	if end > len(s.rows) {
		end = len(s.rows)
	}
	return s.rows[offset:end], nil
}

func (s *stubRepo) Count(context.Context) (int, error) { return len(s.rows), nil }

func seeded(n int) *stubRepo {
	repo := &stubRepo{}
	for i := 1; i <= n; i++ {
		_ = repo.Create(context.Background(), &customer.Customer{
			Name:  "Customer",
			Email: "customer" + string(rune('0'+i)) + "@email.com",
		})
	}
	return repo
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

//
// ===== tests =====
//

func TestGetCustomer_OK_NotFound_BadID(t *testing.T) {
	r := newRouter(seeded(3))

	w := do(r, http.MethodGet, "/api/customers/2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got customer.Customer
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != 2 || got.Email != "customer2@email.com" {
		t.Fatalf("unexpected customer: %+v", got)
	}

	if w := do(r, http.MethodGet, "/api/customers/99", ""); w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d body=%s", w.Code, w.Body.String())
	}
	for _, bad := range []string{"abc", "0", "-4"} {
		if w := do(r, http.MethodGet, "/api/customers/"+bad, ""); w.Code != http.StatusBadRequest {
			t.Fatalf("id=%s: want 400, got %d", bad, w.Code)
		}
	}
}

func TestGetCustomer_StorageError(t *testing.T) {
	r := newRouter(&stubRepo{failing: true})

	w := do(r, http.MethodGet, "/api/customers/1", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", w.Code)
	}
}

func TestListCustomers_Pagination(t *testing.T) {
	r := newRouter(seeded(5))

	w := do(r, http.MethodGet, "/api/customers?limit=2&offset=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got customer.ListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got.Items) != 2 || got.Items[0].ID != 2 || got.Total != 5 || got.Limit != 2 || got.Offset != 1 {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestListCustomers_DefaultsOnBadParams(t *testing.T) {
	r := newRouter(seeded(1))

	w := do(r, http.MethodGet, "/api/customers?limit=1000&offset=-3", "")
	var got customer.ListResponse
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.Limit != 20 || got.Offset != 0 {
		t.Fatalf("want limit=20 offset=0, got %d/%d", got.Limit, got.Offset)
	}
}

func TestCreateCustomer(t *testing.T) {
	repo := &stubRepo{}
	r := newRouter(repo)

	w := do(r, http.MethodPost, "/api/customers", `{"name":"Ada","email":"ada@email.com"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got customer.Customer
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.ID == 0 || got.Name != "Ada" {
		t.Fatalf("unexpected body: %+v", got)
	}

	// same email again
	if w := do(r, http.MethodPost, "/api/customers", `{"name":"Ada 2","email":"ada@email.com"}`); w.Code != http.StatusConflict {
		t.Fatalf("want 409, got %d body=%s", w.Code, w.Body.String())
	}

	for _, body := range []string{`{"name":"x"}`, `{"name":"x","email":"not-an-email"}`, `{`} {
		if w := do(r, http.MethodPost, "/api/customers", body); w.Code != http.StatusBadRequest {
			t.Fatalf("body=%s: want 400, got %d", body, w.Code)
		}
	}
	if len(repo.rows) != 1 {
		t.Fatalf("want 1 stored row, got %d", len(repo.rows))
	}
}

func TestHealthAndRequestID(t *testing.T) {
	r := newRouter(&stubRepo{})

	w := do(r, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("healthz: %d %q", w.Code, w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing X-Request-ID")
	}
}

func TestSwaggerDoc(t *testing.T) {
	r := newRouter(&stubRepo{})

	w := do(r, http.MethodGet, "/swagger/doc.json", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("/customers/{id}")) {
		t.Fatalf("doc.json missing customer paths")
	}
}
