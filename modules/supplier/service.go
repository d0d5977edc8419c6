package supplier

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-monolith/mono"

	productdomain "github.com/example/supplier-inventory/domain/product"
	domain "github.com/example/supplier-inventory/domain/supplier"
)

// createSupplier handles the supplier.create service request.
func (m *Module) createSupplier(_ context.Context, req CreateSupplierRequest, _ *mono.Msg) (CreateSupplierResponse, error) {
	s, err := domain.New(req.Name, req.Email, req.Country, req.ContactPerson, req.Phone)
	if err != nil {
		return CreateSupplierResponse{}, err
	}

	if err := m.repo.Create(s); err != nil {
		return CreateSupplierResponse{}, fmt.Errorf("failed to save supplier: %w", err)
	}

	return CreateSupplierResponse{Supplier: *s}, nil
}

// listSuppliers handles the supplier.list service request.
func (m *Module) listSuppliers(_ context.Context, _ ListSuppliersRequest, _ *mono.Msg) (ListSuppliersResponse, error) {
	suppliers, err := m.repo.FindAll()
	if err != nil {
		return ListSuppliersResponse{}, err
	}
	if suppliers == nil {
		suppliers = []domain.Supplier{}
	}
	return ListSuppliersResponse{Suppliers: suppliers}, nil
}

// getSupplier handles the supplier.get service request. An unknown id is
// not an error: the response carries a nil supplier and an empty product
// list, which the HTTP layer serves as 200.
func (m *Module) getSupplier(_ context.Context, req GetSupplierRequest, _ *mono.Msg) (GetSupplierResponse, error) {
	if req.ID == "" {
		return GetSupplierResponse{}, fmt.Errorf("id is required")
	}

	resp := GetSupplierResponse{Products: []productdomain.Product{}}

	s, err := m.repo.FindByID(req.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return resp, nil
		}
		return GetSupplierResponse{}, err
	}
	resp.Supplier = s

	products, err := m.repo.FindProducts(req.ID)
	if err != nil {
		return GetSupplierResponse{}, err
	}
	if products != nil {
		resp.Products = products
	}

	return resp, nil
}
