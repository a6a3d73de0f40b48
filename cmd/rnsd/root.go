package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/CatGamer7/rns/config"
	"github.com/CatGamer7/rns/http"
	"github.com/CatGamer7/rns/telemetry"
)

var (
	configPath string
	addr       string
	workers    int
	debug      bool

	cfg *config.Config
)

// NewRootCmd creates the rnsd root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rnsd",
		Short: "Pooled HTTP/1.1 server daemon",
		Long: `rnsd serves HTTP/1.1 requests over a fixed worker pool.

Routes, hooks and the pool size are fixed at startup; configuration comes
from a YAML file with flag and environment overrides.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				cfg = config.LoadOrDefault(configPath)
			} else {
				cfg = config.LoadDefault()
			}

			if addr != "" {
				cfg.Server.Addr = addr
			}
			if workers > 0 {
				cfg.Server.Workers = workers
			}
			if debug {
				cfg.Logging.Debug = true
			}

			slog.SetDefault(telemetry.NewLogger(cfg))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides config)")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0, "Worker pool size (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	return rootCmd
}

func run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry.Enabled {
		shutdownTelemetry, err := telemetry.Setup(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdownTelemetry(context.Background()); err != nil {
				slog.Error("telemetry shutdown failed", "error", err)
			}
		}()

		// Re-resolve the logger now that the providers are installed.
		slog.SetDefault(telemetry.NewLogger(cfg))
	}

	server := http.NewServer(cfg.Server.Name, cfg.Server.Workers)
	registerRoutes(server.Router)

	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- server.ListenAndServe(cfg.Server.Addr)
	}()

	select {
	case err := <-serverErrCh:
		return err
	case <-ctx.Done():
		stop()
	}

	slog.Info("shutting down", "server", cfg.Server.Name)
	return server.Shutdown(context.Background())
}

func registerRoutes(router *http.Router) {
	router.GET("/health", func(req *http.Request) {
		res := http.NewResponse(http.VersionHTTP11, http.CannedStatus(http.StatusOK), nil, []byte("ok"))
		res.AddHeader("Content-Type", "text/plain")
		if err := req.Respond(res); err != nil {
			slog.Error("health reply failed", "error", err)
		}
	})

	router.Any("/echo", []string{http.MethodPost, http.MethodPut}, func(req *http.Request) {
		res := http.NewResponse(http.VersionHTTP11, http.CannedStatus(http.StatusOK), nil, req.Body)
		res.AddHeader("Content-Type", "application/octet-stream")
		if err := req.Respond(res); err != nil {
			slog.Error("echo reply failed", "error", err)
		}
	})
}
