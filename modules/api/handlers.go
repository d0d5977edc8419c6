package api

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/gofiber/fiber/v2"

	"github.com/example/supplier-inventory/modules/analytics"
	"github.com/example/supplier-inventory/modules/product"
	"github.com/example/supplier-inventory/modules/supplier"
)

// callService invokes a request-reply service on a container. Handlers
// go through this indirection so tests can substitute canned service
// responses without a running container.
type callService func(ctx context.Context, container mono.ServiceContainer, name string, req, resp any) error

// Handlers contains the HTTP handlers for the REST API.
type Handlers struct {
	supplierContainer  mono.ServiceContainer
	productContainer   mono.ServiceContainer
	analyticsContainer mono.ServiceContainer

	call callService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(supplierC, productC, analyticsC mono.ServiceContainer) *Handlers {
	return &Handlers{
		supplierContainer:  supplierC,
		productContainer:   productC,
		analyticsContainer: analyticsC,
		call: func(ctx context.Context, container mono.ServiceContainer, name string, req, resp any) error {
			return helper.CallRequestReplyService(ctx, container, name, json.Marshal, json.Unmarshal, req, &resp)
		},
	}
}

// CreateSupplier handles POST /api/suppliers.
func (h *Handlers) CreateSupplier(c *fiber.Ctx) error {
	var req supplier.CreateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: "Invalid request body"})
	}

	var resp supplier.CreateSupplierResponse
	if err := h.call(c.UserContext(), h.supplierContainer, "create", &req, &resp); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp.Supplier)
}

// ListSuppliers handles GET /api/suppliers. The full collection is
// returned unfiltered and unpaginated.
func (h *Handlers) ListSuppliers(c *fiber.Ctx) error {
	var req supplier.ListSuppliersRequest
	var resp supplier.ListSuppliersResponse
	if err := h.call(c.UserContext(), h.supplierContainer, "list", &req, &resp); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp.Suppliers)
}

// GetSupplier handles GET /api/suppliers/:id. An unknown id still
// returns 200, with a null supplier and an empty product list.
func (h *Handlers) GetSupplier(c *fiber.Ctx) error {
	req := supplier.GetSupplierRequest{ID: c.Params("id")}
	var resp supplier.GetSupplierResponse
	if err := h.call(c.UserContext(), h.supplierContainer, "get", &req, &resp); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// CreateProduct handles POST /api/products.
func (h *Handlers) CreateProduct(c *fiber.Ctx) error {
	var req product.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: "Invalid request body"})
	}

	var resp product.CreateProductResponse
	if err := h.call(c.UserContext(), h.productContainer, "create", &req, &resp); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp.Product)
}

// ListProducts handles GET /api/products with optional filter and
// pagination query parameters. Non-numeric page/limit values fall back
// to zero here and are clamped to the defaults by the filter builder.
func (h *Handlers) ListProducts(c *fiber.Ctx) error {
	req := product.ListProductsRequest{
		Category:            c.Query("category"),
		CertificationStatus: c.Query("certification_status"),
		SupplierID:          c.Query("supplier_id"),
		Search:              c.Query("search"),
		Page:                c.QueryInt("page", 0),
		Limit:               c.QueryInt("limit", 0),
	}

	var resp product.ListProductsResponse
	if err := h.call(c.UserContext(), h.productContainer, "list", &req, &resp); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// UpdateProduct handles PUT /api/products/:id as a partial update.
func (h *Handlers) UpdateProduct(c *fiber.Ctx) error {
	var req product.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: "Invalid request body"})
	}
	req.ID = c.Params("id")

	var resp product.UpdateProductResponse
	if err := h.call(c.UserContext(), h.productContainer, "update", &req, &resp); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp.Product)
}

// DeleteProduct handles DELETE /api/products/:id.
func (h *Handlers) DeleteProduct(c *fiber.Ctx) error {
	req := product.DeleteProductRequest{ID: c.Params("id")}
	var resp product.DeleteProductResponse
	if err := h.call(c.UserContext(), h.productContainer, "delete", &req, &resp); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// Summary handles GET /api/analytics/summary.
func (h *Handlers) Summary(c *fiber.Ctx) error {
	var req analytics.SummaryRequest
	var resp analytics.SummaryResponse
	if err := h.call(c.UserContext(), h.analyticsContainer, "summary", &req, &resp); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// handleServiceError maps service-call failures to HTTP statuses.
// Errors cross the request-reply boundary as strings, so classification
// is by message matching.
func (h *Handlers) handleServiceError(c *fiber.Ctx, err error) error {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "product not found"):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Message: "Product not found"})
	case strings.Contains(errStr, "validation failed"),
		strings.Contains(errStr, "is required"):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: errStr})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Message: errStr})
	}
}
