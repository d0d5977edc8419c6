package supplier

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	productdomain "github.com/example/supplier-inventory/domain/product"
	domain "github.com/example/supplier-inventory/domain/supplier"
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

	if err := db.AutoMigrate(&domain.Supplier{}, &productdomain.Product{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestSupplier(t *testing.T, name string) *domain.Supplier {
	t.Helper()
	s, err := domain.New(name, name+"@example.com", "USA", "Contact", "555-0100")
	if err != nil {
		t.Fatalf("failed to build test supplier: %v", err)
	}
	return s
}

func TestRepository_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	s := newTestSupplier(t, "EcoFarm")
	if err := repo.Create(s); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("existing supplier", func(t *testing.T) {
		found, err := repo.FindByID(s.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if found.Name != "EcoFarm" {
			t.Errorf("expected name EcoFarm, got %q", found.Name)
		}
	})

	t.Run("non-existent supplier", func(t *testing.T) {
		_, err := repo.FindByID("no-such-id")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	t.Run("empty database", func(t *testing.T) {
		suppliers, err := repo.FindAll()
		if err != nil {
			t.Fatalf("FindAll() error = %v", err)
		}
		if len(suppliers) != 0 {
			t.Errorf("expected 0 suppliers, got %d", len(suppliers))
		}
	})

	for _, name := range []string{"EcoFarm", "Willow", "Northwind"} {
		if err := repo.Create(newTestSupplier(t, name)); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	t.Run("with suppliers", func(t *testing.T) {
		suppliers, err := repo.FindAll()
		if err != nil {
			t.Fatalf("FindAll() error = %v", err)
		}
		if len(suppliers) != 3 {
			t.Errorf("expected 3 suppliers, got %d", len(suppliers))
		}
	})
}

func TestRepository_FindProducts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	s := newTestSupplier(t, "EcoFarm")
	if err := repo.Create(s); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	other := newTestSupplier(t, "Willow")
	if err := repo.Create(other); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	for _, name := range []string{"Honey", "Tomatoes"} {
		p, err := productdomain.New(productdomain.Input{
			SupplierID:    s.ID,
			Name:          name,
			Category:      "Organic Food",
			Price:         5,
			StockQuantity: 3,
		})
		if err != nil {
			t.Fatalf("failed to build test product: %v", err)
		}
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("failed to create test product: %v", err)
		}
	}

	t.Run("products of the supplier", func(t *testing.T) {
		products, err := repo.FindProducts(s.ID)
		if err != nil {
			t.Fatalf("FindProducts() error = %v", err)
		}
		if len(products) != 2 {
			t.Errorf("expected 2 products, got %d", len(products))
		}
	})

	t.Run("supplier without products", func(t *testing.T) {
		products, err := repo.FindProducts(other.ID)
		if err != nil {
			t.Fatalf("FindProducts() error = %v", err)
		}
		if len(products) != 0 {
			t.Errorf("expected 0 products, got %d", len(products))
		}
	})
}
