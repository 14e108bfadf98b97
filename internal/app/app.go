package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"seodash/internal/config"
	"seodash/internal/dataset"
	apierrors "seodash/internal/errors"
	"seodash/internal/exporter"
	"seodash/internal/infrastructure"
	customMiddleware "seodash/internal/middleware"
	"seodash/internal/services"
	handlers "seodash/internal/transport/http"
	"seodash/pkg/contracts"
)

// AppName is the human readable application name
const AppName = "Etsy + Google SEO Dashboard"

// Application represents the main application container
type Application struct {
	Config        *config.Config
	Paths         *config.Paths
	Router        *chi.Mux
	Server        *http.Server
	Logger        *slog.Logger
	OTelProviders *infrastructure.OTelProviders
	Metrics       *infrastructure.BusinessMetrics
	Catalog       *dataset.Catalog
	Services      *ServiceContainer
	ErrorHandler  *apierrors.ErrorHandler

	listener net.Listener
}

// ServiceContainer holds all application services
type ServiceContainer struct {
	Data   *services.DataService
	Export *services.ExportService
	Link   *services.LinkService
	Health *services.HealthService
}

// NewApplication loads configuration from the standard locations, sets up
// logging and builds the application
func NewApplication(ctx context.Context) (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	paths, err := cfg.ResolvePaths()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging, paths.LogsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return New(ctx, cfg, paths, logger)
}

// New wires the application from already resolved configuration. The data
// sets are loaded once here and shared read-only by every request.
func New(ctx context.Context, cfg *config.Config, paths *config.Paths, logger *slog.Logger) (*Application, error) {
	logger.InfoContext(ctx, "Application starting",
		slog.String("name", AppName),
		slog.String("version", contracts.Version))
	paths.LogPathResolution(logger)

	providers, err := infrastructure.InitializeOTel(&infrastructure.OTelConfig{
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: contracts.Version,
		Environment:    infrastructure.DefaultOTelConfig().Environment,
		TraceExporter:  cfg.Telemetry.TraceExporter,
		EnableMetrics:  cfg.Telemetry.MetricsEnabled,
		EnableTracing:  cfg.Telemetry.TracingEnabled,
		SampleRatio:    1.0,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	metrics, err := infrastructure.CreateBusinessMetrics(providers.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}

	catalog, err := dataset.LoadCatalog(ctx, paths.DataDir, dataset.DefaultSchemas())
	if err != nil {
		return nil, fmt.Errorf("failed to load data sets: %w", err)
	}
	for _, s := range catalog.Summaries() {
		logger.InfoContext(ctx, "Data set loaded",
			slog.String("table", s.Name),
			slog.String("source", s.Source),
			slog.Int("rows", s.RowCount),
			slog.Int("columns", len(s.Columns)))
	}

	app := &Application{
		Config:        cfg,
		Paths:         paths,
		Logger:        logger,
		OTelProviders: providers,
		Metrics:       metrics,
		Catalog:       catalog,
		ErrorHandler:  apierrors.NewErrorHandler(logger, false),
	}

	if err := app.initializeServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	if err := app.setupRouter(); err != nil {
		return nil, fmt.Errorf("failed to set up router: %w", err)
	}
	app.createServer()

	return app, nil
}

// initializeServices initializes all application services
func (a *Application) initializeServices() error {
	exp, err := exporter.New(exporter.Options{
		Dir:      a.Paths.ExportsDir,
		PageSize: a.Config.Export.PageSize,
		MarginMM: a.Config.Export.MarginMM,
		CSVBOM:   a.Config.Export.CSVBOM,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize exporter: %w", err)
	}

	a.Services = &ServiceContainer{
		Data:   services.NewDataService(a.Catalog, a.Logger),
		Export: services.NewExportService(a.Catalog, exp, a.Metrics, a.Logger),
		Link:   services.NewLinkService(a.Paths.ExportsDir, a.Metrics, a.Logger),
		Health: services.NewHealthService(contracts.Version, a.Catalog, a.Paths.ExportsDir, a.Logger),
	}
	return nil
}

// setupRouter configures the HTTP router with all routes.
// Middleware order: RequestID → RealIP → OTel → Logger → Recoverer →
// SecureHeaders → CORS → RateLimiter → Timeout.
func (a *Application) setupRouter() error {
	r := chi.NewRouter()

	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.RealIP)

	validator := customMiddleware.NewValidator(a.Logger)

	dashboard, err := handlers.NewDashboardHandler(a.Paths.WebDir,
		a.Services.Data, a.Services.Export, a.Services.Link, a.Logger, a.ErrorHandler)
	if err != nil {
		return err
	}

	r.Group(func(r chi.Router) {
		r.Use(customMiddleware.NewOTelMiddleware(a.OTelProviders, a.Metrics).Handler)
		r.Use(customMiddleware.StructuredLogger(a.Logger))
		r.Use(apierrors.RecoveryMiddleware(a.ErrorHandler))
		r.Use(customMiddleware.DefaultSecureHeaders().Handler)

		if a.Config.Security.EnableCORS {
			r.Use(customMiddleware.CORS(a.Config.Security))
		}
		if rl := a.Config.Security.RateLimit; rl.Enabled {
			r.Use(customMiddleware.NewRateLimiter(rl.RPS, rl.Burst, a.Logger, a.ErrorHandler).Handler)
		}
		r.Use(customMiddleware.Timeout(a.Config.Server.RequestTimeout, a.Logger, a.ErrorHandler))

		r.Method(http.MethodGet, "/", dashboard)

		r.Route("/api", func(r chi.Router) {
			healthHandler := handlers.NewHealthHandler(a.Services.Health, a.Logger)
			r.Get("/health", healthHandler.HealthCheck)
			r.Get("/health/ready", healthHandler.ReadinessCheck)
			r.Get("/health/live", healthHandler.LivenessCheck)
			r.Get("/version", healthHandler.Version)
			r.Post("/logs", handlers.NewClientLogHandler(validator, a.Logger, a.ErrorHandler).Handle)

			r.Mount("/tables", handlers.NewDataHandler(a.Services.Data, validator, a.Logger, a.ErrorHandler).Routes())
			r.Mount("/exports", handlers.NewExportHandler(a.Services.Export, validator, a.Logger, a.ErrorHandler).Routes())
			r.Mount("/utm", handlers.NewUTMHandler(a.Services.Link, validator, a.Logger, a.ErrorHandler).Routes())
		})
	})

	// scrapes skip the request middleware so they do not count themselves
	r.Method(http.MethodGet, "/metrics", handlers.NewMetricsHandler(a.OTelProviders.PrometheusHTTP))

	r.NotFound(a.ErrorHandler.NotFound)
	r.MethodNotAllowed(a.ErrorHandler.MethodNotAllowed)

	a.Router = r
	return nil
}

// createServer creates the HTTP server
func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:           a.Config.Server.Addr(),
		Handler:        a.Router,
		ReadTimeout:    a.Config.Server.ReadTimeout,
		WriteTimeout:   a.Config.Server.WriteTimeout,
		IdleTimeout:    a.Config.Server.IdleTimeout,
		MaxHeaderBytes: a.Config.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(a.Logger.Handler(), slog.LevelError),
	}
}

// Addr returns the bound listen address once Listen has run
func (a *Application) Addr() string {
	if a.listener == nil {
		return a.Server.Addr
	}
	return a.listener.Addr().String()
}

// Listen binds the server address so bind errors surface before serving
func (a *Application) Listen() error {
	ln, err := net.Listen("tcp", a.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.Server.Addr, err)
	}
	a.listener = ln
	return nil
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully. It returns the first server error, if any.
func (a *Application) Serve(ctx context.Context) error {
	if a.listener == nil {
		if err := a.Listen(); err != nil {
			return err
		}
	}

	a.Logger.InfoContext(ctx, "Application started",
		slog.String("address", fmt.Sprintf("http://%s", a.Addr())),
		slog.String("version", contracts.Version))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := a.Server.Serve(a.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return a.Stop(context.WithoutCancel(ctx))
	})

	return g.Wait()
}

// Stop gracefully stops the application
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Shutting down application")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	if a.OTelProviders != nil {
		if err := a.OTelProviders.Shutdown(shutdownCtx); err != nil {
			a.Logger.ErrorContext(ctx, "Error shutting down OpenTelemetry", slog.String("error", err.Error()))
		}
	}

	a.Logger.InfoContext(ctx, "Application shutdown complete")
	return nil
}

// Run runs the application until SIGINT or SIGTERM
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.Serve(ctx)
}
