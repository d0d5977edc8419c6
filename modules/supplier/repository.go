package supplier

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	productdomain "github.com/example/supplier-inventory/domain/product"
	domain "github.com/example/supplier-inventory/domain/supplier"
)

// ErrNotFound is returned when a supplier is not found.
var ErrNotFound = errors.New("supplier not found")

// Repository provides access to supplier storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new supplier repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new supplier to the database.
func (r *Repository) Create(s *domain.Supplier) error {
	if err := r.db.Create(s).Error; err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

// FindAll retrieves every supplier, unfiltered and unpaginated.
func (r *Repository) FindAll() ([]domain.Supplier, error) {
	var suppliers []domain.Supplier
	if err := r.db.Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("failed to find suppliers: %w", err)
	}
	return suppliers, nil
}

// FindByID retrieves a supplier by its ID.
func (r *Repository) FindByID(id string) (*domain.Supplier, error) {
	var s domain.Supplier
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier: %w", err)
	}
	return &s, nil
}

// FindProducts retrieves every product owned by the given supplier.
func (r *Repository) FindProducts(supplierID string) ([]productdomain.Product, error) {
	var products []productdomain.Product
	if err := r.db.Find(&products, "supplier_id = ?", supplierID).Error; err != nil {
		return nil, fmt.Errorf("failed to find supplier products: %w", err)
	}
	return products, nil
}
