package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/haakonunderbakke/haakon-dev/internal/articles"
	"github.com/haakonunderbakke/haakon-dev/internal/domain/ports"
	"github.com/haakonunderbakke/haakon-dev/internal/web"
)

const (
	shutdownTimeout = 5 * time.Second
	refreshTimeout  = 2 * time.Minute
)

// Schedule is the cron spec for catalog refreshes; empty disables them.
type Schedule string

// App manages the lifecycle of the web server and the catalog refresh scheduler.
type App struct {
	server   *http.Server
	catalog  *articles.Catalog
	cron     *cron.Cron
	logger   ports.Logger
	schedule Schedule
}

// New constructs an App instance.
func New(addr string, srv *web.Server, catalog *articles.Catalog, logger ports.Logger, schedule Schedule) *App {
	return &App{
		server: &http.Server{
			Addr:              addr,
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		},
		catalog:  catalog,
		cron:     cron.New(),
		logger:   logger,
		schedule: schedule,
	}
}

// Run restores the last snapshot, starts fetching articles in the background, serves HTTP
// and refreshes on schedule until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.scheduleRefresh(); err != nil {
		return err
	}

	if err := a.catalog.Restore(ctx); err != nil {
		a.logger.Error(ctx, "restoring article snapshot failed", "error", err)
	}
	go a.refresh()

	if a.schedule != "" {
		a.logger.Info(ctx, "starting scheduler", "cron", string(a.schedule))
		a.cron.Start()
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info(ctx, "listening", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error(shutdownCtx, "http shutdown failed", "error", err)
	}

	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(shutdownTimeout):
	}
	a.logger.Info(context.Background(), "stopped")
	return runErr
}

func (a *App) scheduleRefresh() error {
	if a.schedule == "" {
		return nil
	}
	_, err := a.cron.AddFunc(string(a.schedule), a.refresh)
	return err
}

// refresh failures are already logged by the catalog.
func (a *App) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()
	_ = a.catalog.Refresh(ctx)
}
