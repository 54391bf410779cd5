// Command mobilecore runs the state core as a standalone process: it
// rehydrates from durable storage, performs the initial sync against the
// platform API, and reports what it loaded. The mobile shells embed the
// same bootstrap wiring instead of running this binary.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/openhire/mobile-core/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting mobile core",
		"dev", cfg.IsDev,
		"api_base_url", cfg.API.BaseURL,
		"storage_backend", string(cfg.Storage.Backend),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	core, err := bootstrap.BuildCore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer core.Close(context.Background())

	state := core.Store.GetState()
	logger.InfoContext(ctx, "rehydrated",
		"device_id", core.DeviceID,
		"authenticated", state.Session.Authenticated(),
		"theme", string(state.Preferences.Prefs.Theme),
	)

	core.InitialSync(ctx)

	state = core.Store.GetState()
	logger.InfoContext(ctx, "initial sync complete",
		"listings", len(core.Selectors.FilteredListings(state)),
		"applications", core.Selectors.UserApplicationStats(state).Total,
		"route", string(core.Navigator.Current().Destination),
	)

	<-ctx.Done()
	logger.InfoContext(ctx, "shutting down")
	return nil
}
