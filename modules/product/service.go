package product

import (
	"context"
	"fmt"

	"github.com/go-monolith/mono"

	domain "github.com/example/supplier-inventory/domain/product"
)

// createProduct handles the product.create service request.
func (m *Module) createProduct(_ context.Context, req CreateProductRequest, _ *mono.Msg) (CreateProductResponse, error) {
	p, err := domain.New(domain.Input{
		SupplierID:              req.SupplierID,
		Name:                    req.Name,
		Category:                req.Category,
		Price:                   req.Price,
		StockQuantity:           req.StockQuantity,
		Unit:                    req.Unit,
		CertificationStatus:     req.CertificationStatus,
		CertificationExpiryDate: req.CertificationExpiryDate,
		Description:             req.Description,
	})
	if err != nil {
		return CreateProductResponse{}, err
	}

	if err := m.repo.Create(p); err != nil {
		return CreateProductResponse{}, fmt.Errorf("failed to save product: %w", err)
	}

	return CreateProductResponse{Product: *p}, nil
}

// listProducts handles the product.list service request. The raw query
// values are validated into a ListFilter; out-of-enum filter values are
// rejected, absent ones mean no constraint.
func (m *Module) listProducts(_ context.Context, req ListProductsRequest, _ *mono.Msg) (ListProductsResponse, error) {
	filter, err := NewListFilter(
		req.Category,
		req.CertificationStatus,
		req.SupplierID,
		req.Search,
		req.Page,
		req.Limit,
	)
	if err != nil {
		return ListProductsResponse{}, err
	}

	items, total, err := m.repo.List(filter)
	if err != nil {
		return ListProductsResponse{}, err
	}

	return ListProductsResponse{
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: filter.TotalPages(total),
		Data:       items,
	}, nil
}

// updateProduct handles the product.update service request: a partial
// merge of the supplied fields into the stored record.
func (m *Module) updateProduct(_ context.Context, req UpdateProductRequest, _ *mono.Msg) (UpdateProductResponse, error) {
	if req.ID == "" {
		return UpdateProductResponse{}, fmt.Errorf("id is required")
	}

	p, err := m.repo.FindByID(req.ID)
	if err != nil {
		return UpdateProductResponse{}, err
	}

	if err := p.Apply(domain.Update{
		SupplierID:              req.SupplierID,
		Name:                    req.Name,
		Category:                req.Category,
		Price:                   req.Price,
		StockQuantity:           req.StockQuantity,
		Unit:                    req.Unit,
		CertificationStatus:     req.CertificationStatus,
		CertificationExpiryDate: req.CertificationExpiryDate,
		Description:             req.Description,
	}); err != nil {
		return UpdateProductResponse{}, err
	}

	if err := m.repo.Save(p); err != nil {
		return UpdateProductResponse{}, err
	}

	return UpdateProductResponse{Product: *p}, nil
}

// deleteProduct handles the product.delete service request.
func (m *Module) deleteProduct(_ context.Context, req DeleteProductRequest, _ *mono.Msg) (DeleteProductResponse, error) {
	if req.ID == "" {
		return DeleteProductResponse{}, fmt.Errorf("id is required")
	}

	if err := m.repo.Delete(req.ID); err != nil {
		return DeleteProductResponse{}, err
	}

	return DeleteProductResponse{Message: "Product deleted successfully"}, nil
}
