package product

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	domain "github.com/example/supplier-inventory/domain/product"
	supplierdomain "github.com/example/supplier-inventory/domain/supplier"
)

// ErrNotFound is returned when a product is not found.
var ErrNotFound = errors.New("product not found")

// Repository provides access to product storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new product repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListItem is a product denormalized with its supplier's name and
// country. The supplier fields stay empty for orphaned products.
type ListItem struct {
	domain.Product
	SupplierName    string `json:"supplier_name"`
	SupplierCountry string `json:"supplier_country"`
}

// Create saves a new product to the database.
func (r *Repository) Create(p *domain.Product) error {
	if err := r.db.Create(p).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// FindByID retrieves a product by its ID.
func (r *Repository) FindByID(id string) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &p, nil
}

// filtered applies the filter predicates to a fresh product query.
func (r *Repository) filtered(f ListFilter) *gorm.DB {
	q := r.db.Model(&domain.Product{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.CertificationStatus != "" {
		q = q.Where("certification_status = ?", f.CertificationStatus)
	}
	if f.SupplierID != "" {
		q = q.Where("supplier_id = ?", f.SupplierID)
	}
	if f.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}
	return q
}

// List returns one page of products matching the filter, denormalized
// with supplier name and country, plus the total count of all matches.
func (r *Repository) List(f ListFilter) ([]ListItem, int64, error) {
	var total int64
	if err := r.filtered(f).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []domain.Product
	if err := r.filtered(f).Order("created_at").Offset(f.Offset()).Limit(f.Limit).Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	items, err := r.denormalize(products)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// denormalize resolves supplier name and country for each product in a
// single batched lookup.
func (r *Repository) denormalize(products []domain.Product) ([]ListItem, error) {
	items := make([]ListItem, 0, len(products))
	if len(products) == 0 {
		return items, nil
	}

	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.SupplierID)
	}

	var suppliers []supplierdomain.Supplier
	if err := r.db.Select("id", "name", "country").Find(&suppliers, "id IN ?", ids).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve suppliers: %w", err)
	}

	byID := make(map[string]supplierdomain.Supplier, len(suppliers))
	for _, s := range suppliers {
		byID[s.ID] = s
	}

	for _, p := range products {
		item := ListItem{Product: p}
		if s, ok := byID[p.SupplierID]; ok {
			item.SupplierName = s.Name
			item.SupplierCountry = s.Country
		}
		items = append(items, item)
	}
	return items, nil
}

// Save persists an updated product.
func (r *Repository) Save(p *domain.Product) error {
	if err := r.db.Save(p).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// Delete removes a product by ID. Deletion is immediate; there is no
// soft-delete.
func (r *Repository) Delete(id string) error {
	result := r.db.Delete(&domain.Product{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
