package supplier

import (
	productdomain "github.com/example/supplier-inventory/domain/product"
	domain "github.com/example/supplier-inventory/domain/supplier"
)

// CreateSupplierRequest is the request for creating a supplier.
type CreateSupplierRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Country       string `json:"country"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
}

// CreateSupplierResponse is the response after creating a supplier.
type CreateSupplierResponse struct {
	Supplier domain.Supplier `json:"supplier"`
}

// ListSuppliersRequest is the request for listing all suppliers.
type ListSuppliersRequest struct{}

// ListSuppliersResponse is the response containing every supplier.
type ListSuppliersResponse struct {
	Suppliers []domain.Supplier `json:"suppliers"`
}

// GetSupplierRequest is the request for fetching a supplier with its products.
type GetSupplierRequest struct {
	ID string `json:"id"`
}

// GetSupplierResponse pairs a supplier with its product list. Supplier is
// nil when the id does not resolve; the product list is then empty.
type GetSupplierResponse struct {
	Supplier *domain.Supplier        `json:"supplier"`
	Products []productdomain.Product `json:"products"`
}
