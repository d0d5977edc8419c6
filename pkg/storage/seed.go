package storage

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/example/supplier-inventory/domain/product"
	"github.com/example/supplier-inventory/domain/supplier"
	"github.com/example/supplier-inventory/pkg/logger"
)

// Seed inserts demo suppliers and products. It is idempotent: when
// suppliers already exist the seed is skipped entirely.
func Seed(db *gorm.DB) error {
	var supplierCount int64
	if err := db.Model(&supplier.Supplier{}).Count(&supplierCount).Error; err != nil {
		return fmt.Errorf("failed to count suppliers: %w", err)
	}
	if supplierCount > 0 {
		logger.Info().Msg("seed data already exists, skipping")
		return nil
	}

	logger.Info().Msg("seeding database with demo data")

	type supplierSeed struct {
		name, email, country, contact, phone string
	}
	supplierSeeds := []supplierSeed{
		{"EcoFarm Collective", "contact@ecofarm.example", "USA", "Amara Doyle", "+1-555-0101"},
		{"Willow Craftworks", "hello@willowcraft.example", "Portugal", "Beatriz Costa", "+351-555-0102"},
		{"Northwind Goods", "sales@northwind.example", "Denmark", "Soren Holm", "+45-555-0103"},
	}

	type productSeed struct {
		supplierIdx int
		name        string
		category    product.Category
		price       float64
		stock       int
		unit        string
		status      product.CertificationStatus
	}
	productSeeds := []productSeed{
		{0, "Wildflower Honey", product.CategoryOrganicFood, 5.50, 3, "kg", product.CertificationCertified},
		{0, "Heirloom Tomatoes", product.CategoryOrganicFood, 3.20, 40, "kg", product.CertificationPending},
		{1, "Woven Willow Basket", product.CategoryHandmade, 24.00, 12, "pcs", product.CertificationNotCertified},
		{1, "Ceramic Mug", product.CategoryHandmade, 14.50, 8, "pcs", product.CertificationPending},
		{2, "Bamboo Cutlery Set", product.CategorySustainableGoods, 9.99, 150, "pcs", product.CertificationCertified},
		{2, "Recycled Paper Notebook", product.CategorySustainableGoods, 4.75, 6, "pcs", product.CertificationPending},
	}

	suppliers := make([]*supplier.Supplier, 0, len(supplierSeeds))
	for _, s := range supplierSeeds {
		sup, err := supplier.New(s.name, s.email, s.country, s.contact, s.phone)
		if err != nil {
			return fmt.Errorf("invalid seed supplier %q: %w", s.name, err)
		}
		if err := db.Create(sup).Error; err != nil {
			return fmt.Errorf("failed to seed supplier %q: %w", s.name, err)
		}
		suppliers = append(suppliers, sup)
	}

	for _, p := range productSeeds {
		prod, err := product.New(product.Input{
			SupplierID:          suppliers[p.supplierIdx].ID,
			Name:                p.name,
			Category:            string(p.category),
			Price:               p.price,
			StockQuantity:       p.stock,
			Unit:                p.unit,
			CertificationStatus: string(p.status),
		})
		if err != nil {
			return fmt.Errorf("invalid seed product %q: %w", p.name, err)
		}
		if err := db.Create(prod).Error; err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.name, err)
		}
	}

	logger.Info().Int("suppliers", len(supplierSeeds)).Int("products", len(productSeeds)).Msg("database seeding completed")
	return nil
}
