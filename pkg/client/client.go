// Package client is a typed Go client for the supplier/product REST API.
// It mirrors the surface a frontend data layer consumes: one method per
// endpoint, errors surfaced once, never retried.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	productdomain "github.com/example/supplier-inventory/domain/product"
	supplierdomain "github.com/example/supplier-inventory/domain/supplier"
	"github.com/example/supplier-inventory/modules/analytics"
	"github.com/example/supplier-inventory/modules/product"
	"github.com/example/supplier-inventory/modules/supplier"
)

// APIError is a non-2xx response from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Client calls the supplier/product REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API at baseURL (e.g. "http://localhost:8000").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ProductParams are the optional product listing parameters. Zero values
// are omitted from the query string.
type ProductParams struct {
	Category            string
	CertificationStatus string
	SupplierID          string
	Search              string
	Page                int
	Limit               int
}

func (p ProductParams) values() url.Values {
	v := url.Values{}
	if p.Category != "" {
		v.Set("category", p.Category)
	}
	if p.CertificationStatus != "" {
		v.Set("certification_status", p.CertificationStatus)
	}
	if p.SupplierID != "" {
		v.Set("supplier_id", p.SupplierID)
	}
	if s := strings.TrimSpace(p.Search); s != "" {
		v.Set("search", s)
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	return v
}

// GetSuppliers fetches every supplier.
func (c *Client) GetSuppliers(ctx context.Context) ([]supplierdomain.Supplier, error) {
	var suppliers []supplierdomain.Supplier
	if err := c.do(ctx, http.MethodGet, "/api/suppliers", nil, nil, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

// AddSupplier creates a supplier and returns the created record.
func (c *Client) AddSupplier(ctx context.Context, req supplier.CreateSupplierRequest) (*supplierdomain.Supplier, error) {
	var created supplierdomain.Supplier
	if err := c.do(ctx, http.MethodPost, "/api/suppliers", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetSupplier fetches a supplier together with its products. The
// supplier field is nil when the id is unknown.
func (c *Client) GetSupplier(ctx context.Context, id string) (*supplier.GetSupplierResponse, error) {
	var resp supplier.GetSupplierResponse
	if err := c.do(ctx, http.MethodGet, "/api/suppliers/"+url.PathEscape(id), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProducts fetches one page of products matching the params.
func (c *Client) GetProducts(ctx context.Context, params ProductParams) (*product.ListProductsResponse, error) {
	var resp product.ListProductsResponse
	if err := c.do(ctx, http.MethodGet, "/api/products", params.values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddProduct creates a product and returns the created record. Name and
// description are trimmed before sending.
func (c *Client) AddProduct(ctx context.Context, req product.CreateProductRequest) (*productdomain.Product, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)

	var created productdomain.Product
	if err := c.do(ctx, http.MethodPost, "/api/products", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct applies a partial update and returns the post-update record.
func (c *Client) UpdateProduct(ctx context.Context, id string, req product.UpdateProductRequest) (*productdomain.Product, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	req.ID = ""

	var updated productdomain.Product
	if err := c.do(ctx, http.MethodPut, "/api/products/"+url.PathEscape(id), nil, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct removes a product by id.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+url.PathEscape(id), nil, nil, nil)
}

// GetSummary fetches the analytics summary.
func (c *Client) GetSummary(ctx context.Context) (*analytics.SummaryResponse, error) {
	var resp analytics.SummaryResponse
	if err := c.do(ctx, http.MethodGet, "/api/analytics/summary", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: string(data)}
		var parsed struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &parsed) == nil && parsed.Message != "" {
			apiErr.Message = parsed.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
