package analytics

import (
	"fmt"

	"gorm.io/gorm"

	productdomain "github.com/example/supplier-inventory/domain/product"
	supplierdomain "github.com/example/supplier-inventory/domain/supplier"
)

// LowStockThreshold is the stock quantity below which a product is
// flagged in the summary. A quantity of exactly 10 is not low stock.
const LowStockThreshold = 10

// Repository runs the aggregate queries behind the analytics summary.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new analytics repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CountSuppliers returns the total number of suppliers.
func (r *Repository) CountSuppliers() (int64, error) {
	var count int64
	if err := r.db.Model(&supplierdomain.Supplier{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count suppliers: %w", err)
	}
	return count, nil
}

// CountProducts returns the total number of products.
func (r *Repository) CountProducts() (int64, error) {
	var count int64
	if err := r.db.Model(&productdomain.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// CountByCategory groups products by category. Every value present in
// the data is reported, including any outside the nominal enumeration.
func (r *Repository) CountByCategory() ([]CategoryCount, error) {
	var rows []CategoryCount
	err := r.db.Model(&productdomain.Product{}).
		Select("category, count(*) as count").
		Group("category").
		Order("category").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group products by category: %w", err)
	}
	return rows, nil
}

// CountByCertificationStatus groups products by certification status.
func (r *Repository) CountByCertificationStatus() ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.Model(&productdomain.Product{}).
		Select("certification_status, count(*) as count").
		Group("certification_status").
		Order("certification_status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group products by certification status: %w", err)
	}
	return rows, nil
}

// LowStock returns the products with stock strictly below the threshold,
// projected to name and stock quantity only.
func (r *Repository) LowStock() ([]LowStockProduct, error) {
	var rows []LowStockProduct
	err := r.db.Model(&productdomain.Product{}).
		Select("name, stock_quantity").
		Where("stock_quantity < ?", LowStockThreshold).
		Order("stock_quantity").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find low stock products: %w", err)
	}
	return rows, nil
}
