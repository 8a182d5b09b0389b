package http

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/alfassih/praxis_backend/config"
	"github.com/alfassih/praxis_backend/internal/api/http"
	"github.com/alfassih/praxis_backend/pkg/logs"
)

func NewStartCommand() *cobra.Command {
	var shutdownTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}

			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return err
			}

			// Set up structured logger before fx starts so all logs use it.
			slog.SetDefault(logs.New(cfg))

			http.Start(cfg, shutdownTimeout)
			return nil
		},
	}

	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 30*time.Second, "Maximum time to wait for graceful shutdown")

	return cmd
}
