package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/frm/casemock/internal/config"
	"github.com/frm/casemock/internal/generator"
	"github.com/frm/casemock/internal/logging"
	"github.com/frm/casemock/internal/server"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Serve the FRM case management mock API",
		Long: `Serve randomly generated cases, comments, customers and alerts over HTTP.

Configuration is read from defaults, an optional config file, the environment
(SERVER_PORT, SERVER_ALLOWED_ORIGINS, LOG_LEVEL, MOCK_SEED, ...) and flags.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML, JSON or TOML config file")
	cmd.Flags().String("host", "", "interface to listen on")
	cmd.Flags().Int("port", 0, "port to listen on")
	cmd.Flags().Int64("seed", 0, "fixed random seed for every request (0 varies per request)")
	cmd.Flags().String("log-level", "", "log level: debug, info, warn or error")
	return cmd
}

func run(cfg config.Config) error {
	logger := logging.New(cfg.Logging, nil)

	apiHandlers := server.NewAPIHandlers(logger, generator.NewFactory(cfg.Mock.Seed, nil), cfg.Service, cfg.Mock)

	var metrics *server.Metrics
	if cfg.HTTP.MetricsEnabled {
		metrics = server.NewMetrics("casemock")
	}

	router := server.NewRouter(logger, server.RouterDependencies{
		API:            apiHandlers,
		Metrics:        metrics,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		MaxBodyLogSize: cfg.Logging.MaxBodyBytes,
	})

	srv := server.New(logger, cfg.HTTP, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped unexpectedly", "error", err)
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		return err
	}
	return nil
}
