package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/yanqian/svatek/internal/domain/dashboard"
	"github.com/yanqian/svatek/internal/infra/config"
)

// Refresher triggers a board refresh.
type Refresher interface {
	Refresh(ctx context.Context, trigger string) (dashboard.State, error)
}

// App encapsulates the HTTP server lifecycle and automatic refreshes.
type App struct {
	cfg       *config.Config
	logger    *slog.Logger
	server    *http.Server
	refresher Refresher
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, refresher Refresher) *App {
	return &App{
		cfg:       cfg,
		logger:    logger.With("component", "bootstrap"),
		server:    server,
		refresher: refresher,
	}
}

// Run refreshes once at startup, starts the schedule and the HTTP server,
// and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Refresh.OnStartup {
		a.refresh(ctx, dashboard.TriggerStartup)
	}

	scheduler, err := a.startScheduler(ctx)
	if err != nil {
		return err
	}
	if scheduler != nil {
		defer func() {
			<-scheduler.Stop().Done()
		}()
	}

	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.logger.Info("shutdown signal received")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// RefreshOnce runs a single manual refresh without serving HTTP or
// starting the schedule.
func (a *App) RefreshOnce(ctx context.Context) (dashboard.State, error) {
	return a.refresher.Refresh(ctx, dashboard.TriggerManual)
}

func (a *App) startScheduler(ctx context.Context) (*cron.Cron, error) {
	spec := a.cfg.Refresh.Schedule
	if spec == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(a.cfg.SunTimes.Zone())
	if err != nil {
		return nil, err
	}
	scheduler := cron.New(cron.WithLocation(loc))
	if _, err := scheduler.AddFunc(spec, func() {
		a.refresh(ctx, dashboard.TriggerSchedule)
	}); err != nil {
		return nil, err
	}
	scheduler.Start()
	a.logger.Info("refresh schedule started", "schedule", spec, "zone", loc.String())
	return scheduler, nil
}

// refresh never fails the app; the board records and shows the alert.
func (a *App) refresh(ctx context.Context, trigger string) {
	if _, err := a.refresher.Refresh(ctx, trigger); err != nil {
		a.logger.Warn("automatic refresh failed", "trigger", trigger, "error", err)
	}
}
