package main

import (
	"log/slog"
	"os"

	"github.com/templui/notebook/internal/app"
	"github.com/templui/notebook/internal/config"
	"github.com/templui/notebook/internal/logger"
	"github.com/templui/notebook/internal/server"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	err := run(cfg)
	if err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	err := cfg.Validate()
	if err != nil {
		return err
	}

	app, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := app.Close()
		if closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	return server.Run(app)
}
