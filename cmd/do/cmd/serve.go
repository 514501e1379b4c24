package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/templui/notebook/internal/app"
	"github.com/templui/notebook/internal/config"
	"github.com/templui/notebook/internal/logger"
	"github.com/templui/notebook/internal/server"
)

func ServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port != "" {
				cfg.Port = port
			}
			logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

			err := cfg.Validate()
			if err != nil {
				return err
			}

			a, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer func() {
				closeErr := a.Close()
				if closeErr != nil {
					slog.Error("failed to close app", "error", closeErr)
				}
			}()

			return server.Run(a)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides PORT)")
	return cmd
}
