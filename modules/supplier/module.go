package supplier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/gorm"

	"github.com/example/supplier-inventory/pkg/logger"
)

// Module provides supplier management services backed by GORM. The
// database handle is injected at construction; the module never opens
// its own connection.
type Module struct {
	db   *gorm.DB
	repo *Repository
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new supplier module using the given database handle.
func NewModule(db *gorm.DB) *Module {
	return &Module{
		db:   db,
		repo: NewRepository(db),
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "supplier"
}

// RegisterServices registers the supplier request-reply services.
// The framework prefixes service names, so "create" becomes
// "services.supplier.create".
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create", json.Unmarshal, json.Marshal, m.createSupplier,
	); err != nil {
		return fmt.Errorf("failed to register create service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list", json.Unmarshal, json.Marshal, m.listSuppliers,
	); err != nil {
		return fmt.Errorf("failed to register list service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get", json.Unmarshal, json.Marshal, m.getSupplier,
	); err != nil {
		return fmt.Errorf("failed to register get service: %w", err)
	}

	logger.Info().Msg("supplier services registered: services.supplier.{create,list,get}")
	return nil
}

// Start verifies the injected database handle is usable.
func (m *Module) Start(ctx context.Context) error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Stop is a no-op; the storage lifecycle is owned by main.
func (m *Module) Stop(_ context.Context) error {
	return nil
}

// Health performs a health check on the supplier module.
func (m *Module) Health(ctx context.Context) mono.HealthStatus {
	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{Healthy: false, Message: fmt.Sprintf("failed to get sql.DB: %v", err)}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{Healthy: false, Message: fmt.Sprintf("database ping failed: %v", err)}
	}
	return mono.HealthStatus{Healthy: true, Message: "operational"}
}
