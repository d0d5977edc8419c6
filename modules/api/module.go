package api

import (
	"context"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/supplier-inventory/pkg/logger"
)

// Module is the HTTP API module. It owns the Fiber server and reaches
// the supplier, product and analytics services through their containers.
type Module struct {
	app  *fiber.App
	port int

	supplierContainer  mono.ServiceContainer
	productContainer   mono.ServiceContainer
	analyticsContainer mono.ServiceContainer
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.DependentModule = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new API module listening on the given port.
func NewModule(port int) *Module {
	return &Module{port: port}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *Module) Dependencies() []string {
	return []string{"supplier", "product", "analytics"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *Module) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "supplier":
		m.supplierContainer = container
	case "product":
		m.productContainer = container
	case "analytics":
		m.analyticsContainer = container
	}
}

// Start initializes the Fiber HTTP server.
func (m *Module) Start(_ context.Context) error {
	if m.supplierContainer == nil || m.productContainer == nil || m.analyticsContainer == nil {
		return fmt.Errorf("module dependencies not set")
	}

	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	m.app.Use(recover.New())
	m.app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	m.app.Use(cors.New())

	m.setupRoutes()

	go func() {
		if err := m.app.Listen(fmt.Sprintf(":%d", m.port)); err != nil {
			logger.Error().Err(err).Msg("HTTP server error")
		}
	}()

	logger.Info().Int("port", m.port).Msg("HTTP server started")
	return nil
}

// Stop shuts down the Fiber HTTP server.
func (m *Module) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	logger.Info().Msg("shutting down HTTP server")
	return m.app.Shutdown()
}

// Health returns the health status of the module.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"port": m.port,
		},
	}
}

// setupRoutes configures all API routes.
func (m *Module) setupRoutes() {
	handlers := NewHandlers(m.supplierContainer, m.productContainer, m.analyticsContainer)

	m.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"module": "api",
		})
	})

	apiGroup := m.app.Group("/api")

	suppliers := apiGroup.Group("/suppliers")
	suppliers.Post("/", handlers.CreateSupplier)
	suppliers.Get("/", handlers.ListSuppliers)
	suppliers.Get("/:id", handlers.GetSupplier)

	products := apiGroup.Group("/products")
	products.Post("/", handlers.CreateProduct)
	products.Get("/", handlers.ListProducts)
	products.Put("/:id", handlers.UpdateProduct)
	products.Delete("/:id", handlers.DeleteProduct)

	apiGroup.Get("/analytics/summary", handlers.Summary)
}
