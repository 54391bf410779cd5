package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/openhire/mobile-core/config"
	"github.com/openhire/mobile-core/internal/adapters/filestore"
	"github.com/openhire/mobile-core/internal/adapters/httpapi"
	"github.com/openhire/mobile-core/internal/adapters/memstore"
	"github.com/openhire/mobile-core/internal/adapters/redisstore"
	"github.com/openhire/mobile-core/internal/adapters/sqlitestore"
	"github.com/openhire/mobile-core/internal/nav"
	"github.com/openhire/mobile-core/internal/observability/statsd"
	"github.com/openhire/mobile-core/internal/persist"
	"github.com/openhire/mobile-core/internal/ports"
	"github.com/openhire/mobile-core/internal/store"
	"github.com/openhire/mobile-core/internal/views"
)

// Core bundles the fully wired state core: store, derived views,
// navigation, and the persistence boundary.
type Core struct {
	Config    config.AppConfig
	Store     *store.Store
	Selectors *views.Selectors
	Navigator *nav.Navigator
	Persistor *persist.Persistor
	Client    *httpapi.Client
	DeviceID  string

	driver     ports.StorageDriver
	metrics    *statsd.Client
	detachSync func()
	logger     *slog.Logger
}

// BuildCore wires the full dependency graph from config: storage driver,
// platform client, rehydrated store, persistence boundary, and navigator.
func BuildCore(ctx context.Context, cfg config.AppConfig, logger *slog.Logger) (*Core, error) {
	metricsClient, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.Observability.Metrics.IsEnabled(),
		Address: cfg.Observability.Metrics.StatsdAddress,
		Prefix:  "mobilecore",
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}

	driver, err := buildStorageDriver(cfg)
	if err != nil {
		_ = metricsClient.Close()
		return nil, fmt.Errorf("init storage: %w", err)
	}

	client, err := httpapi.New(httpapi.Options{
		BaseURL:    cfg.API.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.API.Timeout},
		Logger:     logger,
	})
	if err != nil {
		_ = driver.Close()
		_ = metricsClient.Close()
		return nil, fmt.Errorf("init api client: %w", err)
	}

	seed, deviceID := persist.Rehydrate(ctx, driver, logger)
	if seed != nil && seed.Token != "" {
		client.SetToken(seed.Token)
	}

	st := store.New(store.Options{
		Client:  client,
		Logger:  logger,
		Metrics: metricsClient,
		Seed:    seed,
		DevMode: cfg.IsDev,
	})

	// Keep the API client's bearer credential in lockstep with the
	// session container: login installs it, logout and forced expiry
	// clear it.
	detachSync := st.Subscribe(store.SliceSession, func(state store.State) {
		client.SetToken(state.Session.Token)
	})

	persistor := persist.NewPersistor(persist.PersistorOptions{
		Driver:   driver,
		Logger:   logger,
		DeviceID: deviceID,
		Debounce: cfg.Storage.Debounce,
	})
	persistor.Attach(st)

	return &Core{
		Config:     cfg,
		Store:      st,
		Selectors:  views.NewSelectors(),
		Navigator:  nav.NewNavigator(st, logger),
		Persistor:  persistor,
		Client:     client,
		DeviceID:   deviceID,
		driver:     driver,
		metrics:    metricsClient,
		detachSync: detachSync,
		logger:     logger,
	}, nil
}

// InitialSync refreshes the remote containers after startup. Listings
// are public; applications load only for an authenticated session. The
// fetches run concurrently and failures stay container-local, so a
// flaky network never blocks startup.
func (c *Core) InitialSync(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c.Store.FetchListings(ctx)
		return nil
	})
	if c.Store.GetState().Session.Authenticated() {
		g.Go(func() error {
			c.Store.FetchApplications(ctx)
			return nil
		})
	}
	_ = g.Wait()
}

// Close flushes pending persistence and releases resources.
func (c *Core) Close(ctx context.Context) {
	c.Navigator.Close()
	if c.detachSync != nil {
		c.detachSync()
	}
	c.Persistor.Flush(ctx)
	c.Persistor.Close()
	if err := c.driver.Close(); err != nil {
		c.logger.WarnContext(ctx, "close storage driver", "error", err)
	}
	if err := c.metrics.Close(); err != nil {
		c.logger.WarnContext(ctx, "close metrics client", "error", err)
	}
}

func buildStorageDriver(cfg config.AppConfig) (ports.StorageDriver, error) {
	switch cfg.Storage.Backend {
	case config.BackendFile:
		return filestore.New(cfg.Storage.Path)
	case config.BackendSQLite:
		return sqlitestore.New(cfg.Storage.Path, cfg.Storage.Namespace)
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return redisstore.New(client, cfg.Storage.Namespace)
	case config.BackendMemory:
		return memstore.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
