package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/lessongen/internal/cache/memory"
	"github.com/davidbz/lessongen/internal/cache/redis"
	"github.com/davidbz/lessongen/internal/catalog"
	"github.com/davidbz/lessongen/internal/config"
	"github.com/davidbz/lessongen/internal/domain"
	"github.com/davidbz/lessongen/internal/extract"
	"github.com/davidbz/lessongen/internal/http"
	"github.com/davidbz/lessongen/internal/http/middleware"
	"github.com/davidbz/lessongen/internal/observability"
	"github.com/davidbz/lessongen/internal/provider/echo"
	"github.com/davidbz/lessongen/internal/provider/google"
	"github.com/davidbz/lessongen/internal/provider/groq"
	"github.com/davidbz/lessongen/internal/provider/image"
	"github.com/davidbz/lessongen/internal/provider/registry"
	"github.com/davidbz/lessongen/internal/routing"
	"github.com/davidbz/lessongen/internal/storage/postgres"
	"github.com/davidbz/lessongen/internal/storage/sqlite"
)

// ErrUnknownLedgerDriver indicates an unsupported LEDGER_DRIVER value.
var ErrUnknownLedgerDriver = errors.New("unknown ledger driver")

// adapters groups the provider adapters. Unconfigured ones are nil.
type adapters struct {
	dig.In

	Google *google.Adapter
	Groq   *groq.Adapter
	Echo   *echo.Adapter
}

// ledgerStore is the token ledger plus the statistics recorder sharing its database.
type ledgerStore struct {
	dig.Out

	Ledger domain.TokenLedger
	Stats  domain.StatsRecorder
}

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *http.Server) {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Printf("Server shutdown failed: %v", err)
			}
		}()

		if err := server.Start(); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

//nolint:funlen // DI wiring reads best as one flat list.
func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func(logger *zap.Logger) domain.EventPublisher {
		observability.SetLogger(logger)
		return observability.NewEventBus(logger)
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}

	// Model catalog
	if err := container.Provide(func(cfg *config.GenerationConfig) (domain.ModelRegistry, error) {
		if cfg.CatalogPath == "" {
			return catalog.Default(), nil
		}
		if cfg.CatalogWatch {
			return catalog.Watch(context.Background(), cfg.CatalogPath)
		}
		return catalog.Load(cfg.CatalogPath)
	}); err != nil {
		log.Fatalf("Failed to provide model catalog: %v", err)
	}

	// Usage counter
	if err := container.Provide(func(cfg *config.RedisConfig) (domain.UsageCounter, error) {
		if cfg.URL == "" {
			observability.FromContext(context.Background()).
				Warn("REDIS_URL not set, daily usage is kept in process memory")
			return memory.NewUsageCounter(), nil
		}

		client, err := redis.NewClientFromURL(cfg.URL)
		if err != nil {
			return nil, err
		}
		return redis.NewUsageCounter(client), nil
	}); err != nil {
		log.Fatalf("Failed to provide usage counter: %v", err)
	}

	// Token ledger and generation statistics
	if err := container.Provide(provideLedgerStore); err != nil {
		log.Fatalf("Failed to provide ledger: %v", err)
	}

	// Provider adapters
	if err := container.Provide(func(cfg *config.GenerationConfig) *image.Loader {
		return image.NewLoader(image.WithFetchTimeout(time.Duration(cfg.ImageFetchTimeout) * time.Second))
	}); err != nil {
		log.Fatalf("Failed to provide image loader: %v", err)
	}
	if err := container.Provide(func(cfg *google.Config, images *image.Loader) (*google.Adapter, error) {
		if cfg.APIKey == "" {
			return nil, nil //nolint:nilnil // skipped at registration
		}
		return google.NewAdapter(context.Background(), *cfg, images)
	}); err != nil {
		log.Fatalf("Failed to provide Google adapter: %v", err)
	}
	if err := container.Provide(func(cfg *groq.Config, images *image.Loader) (*groq.Adapter, error) {
		if cfg.APIKey == "" {
			return nil, nil //nolint:nilnil // skipped at registration
		}
		return groq.NewAdapter(*cfg, images)
	}); err != nil {
		log.Fatalf("Failed to provide Groq adapter: %v", err)
	}
	if err := container.Provide(func(cfg *config.GenerationConfig) (*echo.Adapter, error) {
		if !cfg.EnableEcho {
			return nil, nil //nolint:nilnil // skipped at registration
		}
		return echo.NewAdapter(), nil
	}); err != nil {
		log.Fatalf("Failed to provide echo adapter: %v", err)
	}

	// Adapter registry
	if err := container.Provide(provideAdapterRegistry); err != nil {
		log.Fatalf("Failed to provide adapter registry: %v", err)
	}

	// Domain services
	if err := container.Provide(func(
		cfg *config.GenerationConfig,
		models domain.ModelRegistry,
		usage domain.UsageCounter,
		adapterRegistry domain.AdapterRegistry,
	) domain.ModelSelector {
		return routing.NewSelector(models, usage,
			routing.WithAdapters(adapterRegistry),
			routing.WithPrimaryProvider(domain.ProviderName(cfg.PrimaryProvider)),
			routing.WithPrimaryWeight(cfg.PrimaryWeight),
			routing.WithUsageReadRetries(cfg.UsageReadRetries),
		)
	}); err != nil {
		log.Fatalf("Failed to provide model selector: %v", err)
	}
	if err := container.Provide(func() domain.ResponseExtractor {
		return extract.NewExtractor()
	}); err != nil {
		log.Fatalf("Failed to provide response extractor: %v", err)
	}
	if err := container.Provide(func(
		cfg *config.GenerationConfig,
		selector domain.ModelSelector,
		adapterRegistry domain.AdapterRegistry,
		ledger domain.TokenLedger,
		usage domain.UsageCounter,
		extractor domain.ResponseExtractor,
		events domain.EventPublisher,
		stats domain.StatsRecorder,
	) *domain.Orchestrator {
		return domain.NewOrchestrator(selector, adapterRegistry, ledger, usage, extractor,
			domain.WithMaxAttempts(cfg.MaxAttempts),
			domain.WithEventPublisher(events),
			domain.WithStatsRecorder(stats),
		)
	}); err != nil {
		log.Fatalf("Failed to provide orchestrator: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(func(orchestrator *domain.Orchestrator, ledger domain.TokenLedger) *http.Handler {
		return http.NewHandler(orchestrator, ledger)
	}); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

func provideLedgerStore(cfg *config.LedgerConfig) (ledgerStore, error) {
	ctx := context.Background()

	switch cfg.Driver {
	case config.LedgerDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DSN)
		if err != nil {
			return ledgerStore{}, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return ledgerStore{}, err
		}
		return ledgerStore{
			Ledger: postgres.NewLedger(pool),
			Stats:  postgres.NewStatsRecorder(pool),
		}, nil

	case config.LedgerDriverSQLite, "":
		db, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return ledgerStore{}, err
		}
		return ledgerStore{
			Ledger: sqlite.NewLedger(db),
			Stats:  sqlite.NewStatsRecorder(db),
		}, nil

	default:
		return ledgerStore{}, fmt.Errorf("%w: %q", ErrUnknownLedgerDriver, cfg.Driver)
	}
}

// provideAdapterRegistry registers every configured adapter and warns about
// catalog providers that have no adapter.
func provideAdapterRegistry(models domain.ModelRegistry, in adapters) (domain.AdapterRegistry, error) {
	ctx := context.Background()
	reg := registry.NewRegistry()

	for _, adapter := range []domain.ProviderAdapter{in.Google, in.Groq, in.Echo} {
		if isNilAdapter(adapter) {
			continue
		}
		if err := reg.Register(ctx, adapter); err != nil {
			return nil, fmt.Errorf("failed to register %s adapter: %w", adapter.Name(), err)
		}
	}

	var current *catalog.Catalog
	switch c := models.(type) {
	case *catalog.Catalog:
		current = c
	case *catalog.Watcher:
		current = c.Catalog()
	}
	if current != nil {
		for _, missing := range reg.Missing(ctx, current.Providers()) {
			observability.FromContext(ctx).Warn("catalog provider has no adapter, its models are skipped",
				observability.String("provider", string(missing)),
			)
		}
	}

	return reg, nil
}

func isNilAdapter(adapter domain.ProviderAdapter) bool {
	switch a := adapter.(type) {
	case *google.Adapter:
		return a == nil
	case *groq.Adapter:
		return a == nil
	case *echo.Adapter:
		return a == nil
	default:
		return adapter == nil
	}
}
