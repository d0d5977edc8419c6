// Package storage owns the persistence handle lifecycle: open, migrate,
// optionally seed, and close. Handlers never touch a global connection;
// they receive the handle from here via their module constructors.
package storage

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/example/supplier-inventory/domain/product"
	"github.com/example/supplier-inventory/domain/supplier"
	"github.com/example/supplier-inventory/pkg/logger"
)

// Config holds storage configuration, bound from the environment.
type Config struct {
	Driver string `envconfig:"DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"DB_DSN" default:"inventory.db"`
	Debug  bool   `envconfig:"DB_DEBUG" default:"false"`
	Seed   bool   `envconfig:"SEED_DB" default:"false"`
}

const connectAttempts = 10

// Open connects to the configured database and runs migrations. Postgres
// connections are retried because the database container may still be
// starting when the service boots.
func Open(cfg Config) (*gorm.DB, error) {
	logLevel := gormlogger.Silent
	if cfg.Debug {
		logLevel = gormlogger.Info
	}
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.DSN), gormCfg)
	case "postgres":
		for i := 0; i < connectAttempts; i++ {
			db, err = gorm.Open(postgres.Open(cfg.DSN), gormCfg)
			if err == nil {
				break
			}
			logger.Warn().Err(err).Int("attempt", i+1).Msg("postgres connection failed, retrying")
			time.Sleep(2 * time.Second)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if cfg.Seed {
		if err := Seed(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates or updates the supplier and product tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&supplier.Supplier{}, &product.Product{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.Close()
}
