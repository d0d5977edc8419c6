package product

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	domain "github.com/example/supplier-inventory/domain/product"
	supplierdomain "github.com/example/supplier-inventory/domain/supplier"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&supplierdomain.Supplier{}, &domain.Product{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createTestSupplier(t *testing.T, db *gorm.DB, name, country string) *supplierdomain.Supplier {
	t.Helper()
	s, err := supplierdomain.New(name, name+"@example.com", country, "Contact", "555-0100")
	if err != nil {
		t.Fatalf("failed to build test supplier: %v", err)
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("failed to create test supplier: %v", err)
	}
	return s
}

func createTestProduct(t *testing.T, db *gorm.DB, supplierID, name string, category domain.Category, stock int, status domain.CertificationStatus) *domain.Product {
	t.Helper()
	p, err := domain.New(domain.Input{
		SupplierID:          supplierID,
		Name:                name,
		Category:            string(category),
		Price:               10,
		StockQuantity:       stock,
		CertificationStatus: string(status),
	})
	if err != nil {
		t.Fatalf("failed to build test product: %v", err)
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}
	return p
}

func mustFilter(t *testing.T, category, status, supplierID, search string, page, limit int) ListFilter {
	t.Helper()
	f, err := NewListFilter(category, status, supplierID, search, page, limit)
	if err != nil {
		t.Fatalf("failed to build filter: %v", err)
	}
	return f
}

func TestRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	eco := createTestSupplier(t, db, "EcoFarm", "USA")
	willow := createTestSupplier(t, db, "Willow", "Portugal")

	createTestProduct(t, db, eco.ID, "Wildflower Honey", domain.CategoryOrganicFood, 3, domain.CertificationCertified)
	createTestProduct(t, db, eco.ID, "Heirloom Tomatoes", domain.CategoryOrganicFood, 40, domain.CertificationPending)
	createTestProduct(t, db, willow.ID, "Woven Basket", domain.CategoryHandmade, 12, domain.CertificationPending)

	t.Run("no filter returns everything", func(t *testing.T) {
		items, total, err := repo.List(mustFilter(t, "", "", "", "", 1, 10))
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if total != 3 {
			t.Errorf("expected total 3, got %d", total)
		}
		if len(items) != 3 {
			t.Errorf("expected 3 items, got %d", len(items))
		}
	})

	t.Run("category filter", func(t *testing.T) {
		items, total, err := repo.List(mustFilter(t, "Organic Food", "", "", "", 1, 10))
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if total != 2 {
			t.Errorf("expected total 2, got %d", total)
		}
		for _, item := range items {
			if item.Category != domain.CategoryOrganicFood {
				t.Errorf("item %q does not match category filter", item.Name)
			}
		}
	})

	t.Run("filters combine conjunctively", func(t *testing.T) {
		items, total, err := repo.List(mustFilter(t, "Organic Food", "Certified", "", "", 1, 10))
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if total != 1 {
			t.Fatalf("expected total 1, got %d", total)
		}
		if items[0].Name != "Wildflower Honey" {
			t.Errorf("expected Wildflower Honey, got %q", items[0].Name)
		}
	})

	t.Run("supplier filter", func(t *testing.T) {
		_, total, err := repo.List(mustFilter(t, "", "", willow.ID, "", 1, 10))
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if total != 1 {
			t.Errorf("expected total 1, got %d", total)
		}
	})

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		items, total, err := repo.List(mustFilter(t, "", "", "", "hOnEy", 1, 10))
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if total != 1 {
			t.Fatalf("expected total 1, got %d", total)
		}
		if items[0].Name != "Wildflower Honey" {
			t.Errorf("expected Wildflower Honey, got %q", items[0].Name)
		}
	})

	t.Run("supplier fields are denormalized", func(t *testing.T) {
		items, _, err := repo.List(mustFilter(t, "", "", "", "Honey", 1, 10))
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if items[0].SupplierName != "EcoFarm" {
			t.Errorf("expected supplier name EcoFarm, got %q", items[0].SupplierName)
		}
		if items[0].SupplierCountry != "USA" {
			t.Errorf("expected supplier country USA, got %q", items[0].SupplierCountry)
		}
	})

	t.Run("orphaned product keeps empty supplier fields", func(t *testing.T) {
		createTestProduct(t, db, "no-such-supplier", "Orphan Candle", domain.CategoryHandmade, 5, domain.CertificationPending)
		items, _, err := repo.List(mustFilter(t, "", "", "", "Orphan", 1, 10))
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
		if items[0].SupplierName != "" || items[0].SupplierCountry != "" {
			t.Errorf("expected empty supplier fields, got %q/%q", items[0].SupplierName, items[0].SupplierCountry)
		}
	})
}

func TestRepository_ListPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	s := createTestSupplier(t, db, "Northwind", "Denmark")
	for i := 0; i < 25; i++ {
		createTestProduct(t, db, s.ID, "Item "+string(rune('A'+i)), domain.CategorySustainableGoods, 50, domain.CertificationPending)
	}

	t.Run("total counts all matches, not page size", func(t *testing.T) {
		items, total, err := repo.List(mustFilter(t, "", "", "", "", 1, 10))
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if total != 25 {
			t.Errorf("expected total 25, got %d", total)
		}
		if len(items) != 10 {
			t.Errorf("expected 10 items on page 1, got %d", len(items))
		}
	})

	t.Run("last page is partial", func(t *testing.T) {
		items, _, err := repo.List(mustFilter(t, "", "", "", "", 3, 10))
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(items) != 5 {
			t.Errorf("expected 5 items on page 3, got %d", len(items))
		}
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		items, total, err := repo.List(mustFilter(t, "", "", "", "", 4, 10))
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if total != 25 {
			t.Errorf("expected total 25, got %d", total)
		}
		if len(items) != 0 {
			t.Errorf("expected empty page, got %d items", len(items))
		}
	})
}

func TestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	s := createTestSupplier(t, db, "EcoFarm", "USA")
	keep := createTestProduct(t, db, s.ID, "Keep Me", domain.CategoryOrganicFood, 5, domain.CertificationPending)
	remove := createTestProduct(t, db, s.ID, "Remove Me", domain.CategoryOrganicFood, 5, domain.CertificationPending)

	t.Run("removes exactly the addressed record", func(t *testing.T) {
		if err := repo.Delete(remove.ID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}

		if _, err := repo.FindByID(remove.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound for deleted product, got %v", err)
		}
		if _, err := repo.FindByID(keep.ID); err != nil {
			t.Errorf("other product should survive, got %v", err)
		}
	})

	t.Run("non-existent id signals not found", func(t *testing.T) {
		if err := repo.Delete("no-such-id"); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
