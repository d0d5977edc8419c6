package product

import (
	"time"

	domain "github.com/example/supplier-inventory/domain/product"
)

// CreateProductRequest is the request for creating a product.
type CreateProductRequest struct {
	SupplierID              string     `json:"supplier_id"`
	Name                    string     `json:"name"`
	Category                string     `json:"category"`
	Price                   float64    `json:"price"`
	StockQuantity           int        `json:"stock_quantity"`
	Unit                    string     `json:"unit"`
	CertificationStatus     string     `json:"certification_status"`
	CertificationExpiryDate *time.Time `json:"certification_expiry_date,omitempty"`
	Description             string     `json:"description"`
}

// CreateProductResponse is the response after creating a product.
type CreateProductResponse struct {
	Product domain.Product `json:"product"`
}

// ListProductsRequest carries the raw listing query parameters. They are
// validated into a ListFilter by the service.
type ListProductsRequest struct {
	Category            string `json:"category"`
	CertificationStatus string `json:"certification_status"`
	SupplierID          string `json:"supplier_id"`
	Search              string `json:"search"`
	Page                int    `json:"page"`
	Limit               int    `json:"limit"`
}

// ListProductsResponse is one page of products with pagination metadata.
type ListProductsResponse struct {
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"totalPages"`
	Data       []ListItem `json:"data"`
}

// UpdateProductRequest is the request for partially updating a product.
// Nil fields are left unchanged.
type UpdateProductRequest struct {
	ID                      string     `json:"id"`
	SupplierID              *string    `json:"supplier_id,omitempty"`
	Name                    *string    `json:"name,omitempty"`
	Category                *string    `json:"category,omitempty"`
	Price                   *float64   `json:"price,omitempty"`
	StockQuantity           *int       `json:"stock_quantity,omitempty"`
	Unit                    *string    `json:"unit,omitempty"`
	CertificationStatus     *string    `json:"certification_status,omitempty"`
	CertificationExpiryDate *time.Time `json:"certification_expiry_date,omitempty"`
	Description             *string    `json:"description,omitempty"`
}

// UpdateProductResponse carries the post-update record.
type UpdateProductResponse struct {
	Product domain.Product `json:"product"`
}

// DeleteProductRequest is the request for deleting a product.
type DeleteProductRequest struct {
	ID string `json:"id"`
}

// DeleteProductResponse confirms a deletion.
type DeleteProductResponse struct {
	Message string `json:"message"`
}
