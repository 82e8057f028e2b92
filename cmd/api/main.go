// Command api serves the home services directory.
//
//	@title						Home Services Directory API
//	@version					1.0
//	@description				Provider directory, reviews, favorites and service reminders for local home services.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/homeservices/directory/internal/api"
	"github.com/homeservices/directory/internal/api/handler"
	"github.com/homeservices/directory/internal/core/service"
	"github.com/homeservices/directory/internal/core/state"
	"github.com/homeservices/directory/internal/infrastructure/clock"
	"github.com/homeservices/directory/internal/infrastructure/config"
	"github.com/homeservices/directory/internal/infrastructure/connectivity"
	"github.com/homeservices/directory/internal/infrastructure/db"
	"github.com/homeservices/directory/internal/infrastructure/notify"
	"github.com/homeservices/directory/internal/infrastructure/queue"
	"github.com/homeservices/directory/internal/infrastructure/scheduler"
	"github.com/homeservices/directory/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log := logger.Get()
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{Service: "directory"})
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "directory",
	})
	log.Info().Str("env", cfg.Env).Str("storage", cfg.Storage.Backend).Msg("starting")

	// --- Storage ---
	snapshots, err := db.Open(ctx, cfg.Storage, logger.Component("storage"))
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := snapshots.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("failed to close snapshot store")
		}
	}()

	store := state.New(snapshots, logger.Component("state"))
	store.Load(ctx)

	// --- Infrastructure ---
	clk := clock.System{}
	hub := notify.NewHub(clk, logger.Component("toasts"))
	monitor := connectivity.NewMonitor(hub, logger.Component("connectivity"))

	dispatcher := queue.NewDispatcher(cfg.Workers.Dispatcher, logger.Component("dispatcher"))
	dispatcher.Start(context.WithoutCancel(ctx))
	defer dispatcher.Stop()

	// --- Services ---
	directory := service.NewDirectoryService(store, hub, clk, logger.Component("directory"))
	reminders := service.NewReminderService(store, hub, clk, logger.Component("reminders"))
	sessions := service.NewSessionService(store, clk, cfg.JWTSecret, cfg.SessionTTL, logger.Component("sessions"))
	favorites := service.NewFavoriteService(store, dispatcher, monitor, hub, clk, clock.Random{}, service.FavoriteOptions{
		Delay:       cfg.Favorites.Delay,
		FailureRate: cfg.Favorites.FailureRate,
	}, logger.Component("favorites"))
	contact := service.NewContactService(hub, clk, cfg.Contact.Delay, cfg.MapEmbedURL, logger.Component("contact"))
	dashboard := service.NewDashboardService(store, reminders)

	sweep, err := scheduler.NewReminderSweep(cfg.Workers.SweepSchedule, reminders, logger.Component("scheduler"))
	if err != nil {
		return err
	}
	sweep.Start(ctx)
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		sweep.Stop(stopCtx)
	}()

	// --- HTTP ---
	e, err := api.NewRouter(api.Dependencies{
		State:        store,
		Directory:    directory,
		Reminders:    reminders,
		Sessions:     sessions,
		Favorites:    favorites,
		Contact:      contact,
		Dashboard:    dashboard,
		Toasts:       hub,
		Connectivity: monitor,
		Readiness:    map[string]handler.Pinger{cfg.Storage.Backend: snapshots},
		CORSOrigins:  cfg.CORSOrigins,
		Log:          logger.Component("http"),
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
