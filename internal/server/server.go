package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/templui/notebook/internal/app"
	"github.com/templui/notebook/internal/routes"
)

// Run serves the app on its configured port until SIGINT or SIGTERM, then
// drains in-flight requests for up to ShutdownTimeout.
func Run(app *app.App) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    ":" + app.Cfg.Port,
		Handler: routes.SetupRoutes(app),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", app.Cfg.Port, "env", app.Cfg.AppEnv, "url", "http://localhost:"+app.Cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("server shutting down", "timeout", app.Cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Cfg.ShutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}
