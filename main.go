package main

import (
	"context"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/example/supplier-inventory/modules/analytics"
	"github.com/example/supplier-inventory/modules/api"
	"github.com/example/supplier-inventory/modules/product"
	"github.com/example/supplier-inventory/modules/supplier"
	"github.com/example/supplier-inventory/pkg/logger"
	"github.com/example/supplier-inventory/pkg/storage"
)

// AppConfig defines all configurable parameters for the service, sourced
// from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Env             string        `envconfig:"APP_ENV" default:"development"`
	HTTPPort        int           `envconfig:"HTTP_PORT" default:"8000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`

	Storage storage.Config
}

func main() {
	// Missing .env is fine; everything can come from the real environment.
	_ = godotenv.Load(".env")

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to process environment config")
	}

	logger.Init(cfg.Env)

	db, err := storage.Open(cfg.Storage)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open storage")
	}

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(cfg.ShutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create application")
	}

	app.Register(supplier.NewModule(db))
	app.Register(product.NewModule(db))
	app.Register(analytics.NewModule(db))
	app.Register(api.NewModule(cfg.HTTPPort))

	if err := app.Start(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("failed to start application")
	}

	logger.Info().Int("port", cfg.HTTPPort).Str("driver", cfg.Storage.Driver).Msg("supplier inventory service started")

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				logger.Info().Msg("graceful shutdown initiated")
				return app.Stop(ctx)
			},
			"storage": func(_ context.Context) error {
				return storage.Close(db)
			},
		},
	)

	exitCode := <-wait
	logger.Info().Int("code", exitCode).Msg("application exited")
	os.Exit(exitCode)
}
