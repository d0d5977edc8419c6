package analytics

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/gorm"

	"github.com/example/supplier-inventory/pkg/logger"
)

// Module provides the analytics summary service.
type Module struct {
	db   *gorm.DB
	repo *Repository
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new analytics module using the given database handle.
func NewModule(db *gorm.DB) *Module {
	return &Module{
		db:   db,
		repo: NewRepository(db),
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "analytics"
}

// RegisterServices registers the analytics request-reply services.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "summary", json.Unmarshal, json.Marshal, m.summary,
	); err != nil {
		return fmt.Errorf("failed to register summary service: %w", err)
	}

	logger.Info().Msg("analytics services registered: services.analytics.summary")
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

// Health performs a health check on the analytics module.
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
