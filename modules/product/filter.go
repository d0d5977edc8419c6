package product

import (
	"fmt"

	domain "github.com/example/supplier-inventory/domain/product"
)

// Pagination defaults and bounds for product listings.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListFilter is the parsed, validated form of the product listing query
// parameters. Empty string fields mean "no constraint on this field".
type ListFilter struct {
	Category            string
	CertificationStatus string
	SupplierID          string
	Search              string
	Page                int
	Limit               int
}

// NewListFilter validates the optional filter fields and clamps the
// pagination window. Page and limit values below 1 fall back to the
// defaults; limit is capped at MaxLimit.
func NewListFilter(category, certificationStatus, supplierID, search string, page, limit int) (ListFilter, error) {
	if category != "" && !domain.Category(category).Valid() {
		return ListFilter{}, &domain.ValidationError{
			Field:  "category",
			Reason: fmt.Sprintf("%q is not a valid category", category),
		}
	}
	if certificationStatus != "" && !domain.CertificationStatus(certificationStatus).Valid() {
		return ListFilter{}, &domain.ValidationError{
			Field:  "certification_status",
			Reason: fmt.Sprintf("%q is not a valid certification status", certificationStatus),
		}
	}

	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return ListFilter{
		Category:            category,
		CertificationStatus: certificationStatus,
		SupplierID:          supplierID,
		Search:              search,
		Page:                page,
		Limit:               limit,
	}, nil
}

// Offset returns the number of rows to skip for the current page.
func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// TotalPages returns ceil(total/limit) for the filter's limit.
func (f ListFilter) TotalPages(total int64) int {
	return int((total + int64(f.Limit) - 1) / int64(f.Limit))
}
