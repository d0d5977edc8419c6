package product

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category is the closed set of product categories.
type Category string

const (
	CategoryOrganicFood      Category = "Organic Food"
	CategoryHandmade         Category = "Handmade"
	CategorySustainableGoods Category = "Sustainable Goods"
)

// Categories lists every valid product category.
var Categories = []Category{
	CategoryOrganicFood,
	CategoryHandmade,
	CategorySustainableGoods,
}

// Valid reports whether the category is a member of the enumeration.
func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// CertificationStatus is the closed set of certification states.
type CertificationStatus string

const (
	CertificationCertified    CertificationStatus = "Certified"
	CertificationPending      CertificationStatus = "Pending"
	CertificationNotCertified CertificationStatus = "Not Certified"
)

// CertificationStatuses lists every valid certification status.
var CertificationStatuses = []CertificationStatus{
	CertificationCertified,
	CertificationPending,
	CertificationNotCertified,
}

// Valid reports whether the status is a member of the enumeration.
func (s CertificationStatus) Valid() bool {
	for _, v := range CertificationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// DefaultUnit is applied when a product is created without a unit.
const DefaultUnit = "pcs"

// Product represents a product owned by a supplier. The supplier
// reference is not enforced at write time, so a product may outlive
// its supplier.
type Product struct {
	ID                      string              `gorm:"primaryKey;type:text" json:"id"`
	SupplierID              string              `gorm:"not null;index;type:text" json:"supplier_id"`
	Name                    string              `gorm:"not null;type:text" json:"name"`
	Category                Category            `gorm:"not null;type:text" json:"category"`
	Price                   float64             `gorm:"not null" json:"price"`
	StockQuantity           int                 `gorm:"not null" json:"stock_quantity"`
	Unit                    string              `gorm:"not null;default:pcs" json:"unit"`
	CertificationStatus     CertificationStatus `gorm:"not null;default:Pending" json:"certification_status"`
	CertificationExpiryDate *time.Time          `json:"certification_expiry_date,omitempty"`
	Description             string              `json:"description,omitempty"`
	CreatedAt               time.Time           `json:"created_at"`
	UpdatedAt               time.Time           `json:"updated_at"`
}

// TableName returns the table name for the Product entity.
func (Product) TableName() string {
	return "products"
}

// ValidationError reports a field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "product validation failed: " + e.Field + " " + e.Reason
}

// Input carries the caller-supplied attributes for constructing a product.
type Input struct {
	SupplierID              string
	Name                    string
	Category                string
	Price                   float64
	StockQuantity           int
	Unit                    string
	CertificationStatus     string
	CertificationExpiryDate *time.Time
	Description             string
}

// New constructs a Product from caller input, applying defaults and
// validating enum membership and numeric minimums.
func New(in Input) (*Product, error) {
	if strings.TrimSpace(in.SupplierID) == "" {
		return nil, &ValidationError{Field: "supplier_id", Reason: "is required"}
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "is required"}
	}

	category := Category(in.Category)
	if !category.Valid() {
		return nil, &ValidationError{
			Field:  "category",
			Reason: fmt.Sprintf("%q is not a valid category", in.Category),
		}
	}

	if in.Price < 0 {
		return nil, &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if in.StockQuantity < 0 {
		return nil, &ValidationError{Field: "stock_quantity", Reason: "must not be negative"}
	}

	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = DefaultUnit
	}

	status := CertificationStatus(in.CertificationStatus)
	if in.CertificationStatus == "" {
		status = CertificationPending
	} else if !status.Valid() {
		return nil, &ValidationError{
			Field:  "certification_status",
			Reason: fmt.Sprintf("%q is not a valid certification status", in.CertificationStatus),
		}
	}

	now := time.Now()
	return &Product{
		ID:                      uuid.New().String(),
		SupplierID:              in.SupplierID,
		Name:                    strings.TrimSpace(in.Name),
		Category:                category,
		Price:                   in.Price,
		StockQuantity:           in.StockQuantity,
		Unit:                    unit,
		CertificationStatus:     status,
		CertificationExpiryDate: in.CertificationExpiryDate,
		Description:             strings.TrimSpace(in.Description),
		CreatedAt:               now,
		UpdatedAt:               now,
	}, nil
}

// Update carries a partial set of product fields. Nil fields are left
// untouched by Apply.
type Update struct {
	SupplierID              *string
	Name                    *string
	Category                *string
	Price                   *float64
	StockQuantity           *int
	Unit                    *string
	CertificationStatus     *string
	CertificationExpiryDate *time.Time
	Description             *string
}

// Apply merges the update into the product, validating every supplied
// field the same way New does.
func (p *Product) Apply(u Update) error {
	if u.SupplierID != nil {
		if strings.TrimSpace(*u.SupplierID) == "" {
			return &ValidationError{Field: "supplier_id", Reason: "is required"}
		}
		p.SupplierID = *u.SupplierID
	}
	if u.Name != nil {
		if strings.TrimSpace(*u.Name) == "" {
			return &ValidationError{Field: "name", Reason: "is required"}
		}
		p.Name = strings.TrimSpace(*u.Name)
	}
	if u.Category != nil {
		category := Category(*u.Category)
		if !category.Valid() {
			return &ValidationError{
				Field:  "category",
				Reason: fmt.Sprintf("%q is not a valid category", *u.Category),
			}
		}
		p.Category = category
	}
	if u.Price != nil {
		if *u.Price < 0 {
			return &ValidationError{Field: "price", Reason: "must not be negative"}
		}
		p.Price = *u.Price
	}
	if u.StockQuantity != nil {
		if *u.StockQuantity < 0 {
			return &ValidationError{Field: "stock_quantity", Reason: "must not be negative"}
		}
		p.StockQuantity = *u.StockQuantity
	}
	if u.Unit != nil && strings.TrimSpace(*u.Unit) != "" {
		p.Unit = strings.TrimSpace(*u.Unit)
	}
	if u.CertificationStatus != nil {
		status := CertificationStatus(*u.CertificationStatus)
		if !status.Valid() {
			return &ValidationError{
				Field:  "certification_status",
				Reason: fmt.Sprintf("%q is not a valid certification status", *u.CertificationStatus),
			}
		}
		p.CertificationStatus = status
	}
	if u.CertificationExpiryDate != nil {
		p.CertificationExpiryDate = u.CertificationExpiryDate
	}
	if u.Description != nil {
		p.Description = strings.TrimSpace(*u.Description)
	}

	p.UpdatedAt = time.Now()
	return nil
}
