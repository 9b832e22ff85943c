// Package main is the entry point for the project tracker. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/project-tracker/internal/adapters/http"
	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/project-tracker/internal/adapters/store/breaker"
	"github.com/jsamuelsen11/project-tracker/internal/adapters/store/sqlite"

	"github.com/jsamuelsen11/project-tracker/internal/app"
	"github.com/jsamuelsen11/project-tracker/internal/app/feed"
	"github.com/jsamuelsen11/project-tracker/internal/platform/config"
	"github.com/jsamuelsen11/project-tracker/internal/platform/health"
	"github.com/jsamuelsen11/project-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/project-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-tracker/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		_ = otel.Shutdown(ctx)
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*sqlite.Store](injector))
	registry.Register(do.MustInvoke[*breaker.Store](injector))
	registry.Register(do.MustInvoke[*feed.Bus](injector))

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Graceful shutdown: close subscriptions, then drain HTTP requests.
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	if err := do.MustInvoke[*feed.Bus](injector).Close(); err != nil {
		logger.Error("feed shutdown error", slog.Any("error", err))
	}
	if err := do.MustInvoke[*sqlite.Store](injector).Close(); err != nil {
		logger.Error("store shutdown error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*sqlite.Store, error) {
		return sqlite.Open(ctx, &cfg.Database, logger)
	})

	do.Provide(injector, func(i do.Injector) (*breaker.Store, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return breaker.New(store, &cfg.Store.CircuitBreaker, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Store, error) {
		return do.MustInvoke[*breaker.Store](i), nil
	})

	do.Provide(injector, func(i do.Injector) (*feed.Bus, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return feed.New(cfg.Feed.BufferSize, metrics), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.EventFeed, error) {
		return do.MustInvoke[*feed.Bus](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProjectService, error) {
		store := do.MustInvoke[ports.Store](i)
		bus := do.MustInvoke[ports.EventFeed](i)
		return app.NewProjectService(store, bus, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		store := do.MustInvoke[ports.Store](i)
		bus := do.MustInvoke[ports.EventFeed](i)
		return app.NewTaskService(store, bus, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(cfg.Health.CheckTimeout), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ProjectHandler, error) {
		svc := do.MustInvoke[ports.ProjectService](i)
		return handlers.NewProjectHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TaskHandler, error) {
		svc := do.MustInvoke[ports.TaskService](i)
		return handlers.NewTaskHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.SubscriptionHandler, error) {
		bus := do.MustInvoke[ports.EventFeed](i)
		return handlers.NewSubscriptionHandler(bus, &cfg.Feed), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := adapthttp.Handlers{
			Projects:      do.MustInvoke[*handlers.ProjectHandler](i),
			Tasks:         do.MustInvoke[*handlers.TaskHandler](i),
			Health:        do.MustInvoke[*handlers.HealthHandler](i),
			Subscriptions: do.MustInvoke[*handlers.SubscriptionHandler](i),
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h, cfg.Server.RequestTimeout, middleware.Standard(logger, metrics)...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		srv := adapthttp.NewServer(cfg.Server, handler, logger)

		// Hijacked WebSocket connections are invisible to http.Server.Shutdown,
		// so subscribers are told to go away first.
		srv.OnShutdown(do.MustInvoke[*handlers.SubscriptionHandler](i).Shutdown)
		return srv, nil
	})
}
