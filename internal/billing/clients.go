package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/MikeMC777/billing-ecom/internal/httpx"
)

//go:generate mockgen -source=clients.go -destination=mocks/mock_clients.go -package=mocks

const (
	CustomerService = "customer-service"
	ProductService  = "product-service"

	listPageSize = 100
)

// Resolver fetches the entities a bill references from the services that own them.
type Resolver interface {
	ResolveCustomer(ctx context.Context, id int64) (*Customer, error)
	ResolveProduct(ctx context.Context, id int64) (*Product, error)
}

// Directory lists every customer and product. Only seeding uses it.
type Directory interface {
	ListCustomers(ctx context.Context) ([]Customer, error)
	ListProducts(ctx context.Context) ([]Product, error)
}

// HTTPResolver implements Resolver and Directory against the customer and
// product services' REST APIs.
type HTTPResolver struct {
	HTTP            *http.Client
	CustomerBaseURL string
	ProductBaseURL  string
}

func NewHTTPResolver(customerBaseURL, productBaseURL string, timeout time.Duration) *HTTPResolver {
	return &HTTPResolver{
		HTTP:            &http.Client{Timeout: timeout},
		CustomerBaseURL: strings.TrimRight(customerBaseURL, "/"),
		ProductBaseURL:  strings.TrimRight(productBaseURL, "/"),
	}
}

func (r *HTTPResolver) ResolveCustomer(ctx context.Context, id int64) (*Customer, error) {
	var c Customer
	url := fmt.Sprintf("%s/api/customers/%d", r.CustomerBaseURL, id)
	if err := r.getJSON(ctx, url, &c); err != nil {
		return nil, &RemoteResolutionError{Service: CustomerService, ID: id, Err: err}
	}
	if c.ID != id {
		return nil, &RemoteResolutionError{Service: CustomerService, ID: id, Err: errMismatch(c.ID)}
	}
	return &c, nil
}

func (r *HTTPResolver) ResolveProduct(ctx context.Context, id int64) (*Product, error) {
	var p Product
	url := fmt.Sprintf("%s/api/products/%d", r.ProductBaseURL, id)
	if err := r.getJSON(ctx, url, &p); err != nil {
		return nil, &RemoteResolutionError{Service: ProductService, ID: id, Err: err}
	}
	if p.ID != id {
		return nil, &RemoteResolutionError{Service: ProductService, ID: id, Err: errMismatch(p.ID)}
	}
	return &p, nil
}

// errMismatch covers a 200 whose body is null, {} or another entity.
func errMismatch(got int64) error {
	return fmt.Errorf("peer returned id %d", got)
}

type page[T any] struct {
	Items []T `json:"items"`
}

func (r *HTTPResolver) ListCustomers(ctx context.Context) ([]Customer, error) {
	return listAll[Customer](ctx, r, r.CustomerBaseURL+"/api/customers")
}

func (r *HTTPResolver) ListProducts(ctx context.Context) ([]Product, error) {
	return listAll[Product](ctx, r, r.ProductBaseURL+"/api/products")
}

// listAll follows limit/offset pages until a short page comes back.
func listAll[T any](ctx context.Context, r *HTTPResolver, base string) ([]T, error) {
	out := []T{}
	for offset := 0; ; offset += listPageSize {
		var p page[T]
		url := fmt.Sprintf("%s?limit=%d&offset=%d", base, listPageSize, offset)
		if err := r.getJSON(ctx, url, &p); err != nil {
			return nil, fmt.Errorf("list %s: %w", base, err)
		}
		out = append(out, p.Items...)
		if len(p.Items) < listPageSize {
			return out, nil
		}
	}
}

func (r *HTTPResolver) getJSON(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if rid := httpx.RequestIDFrom(ctx); rid != "" {
		req.Header.Set(httpx.HeaderRequestID, rid)
	}

	res, err := r.HTTP.Do(req)
	if err != nil {
		log.Printf("[resolver] GET %s: %v", url, err)
		return err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return ErrRemoteNotFound
	case res.StatusCode < 200 || res.StatusCode > 299:
		log.Printf("[resolver] GET %s: status=%d", url, res.StatusCode)
		return fmt.Errorf("unexpected status: %s", res.Status)
	}

	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty response body")
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
