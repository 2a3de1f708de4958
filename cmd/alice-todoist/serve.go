package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	httpAdapter "github.com/RasimKhusaenov/alice-todoist-integration/internal/adapters/http"
	memoryAdapter "github.com/RasimKhusaenov/alice-todoist-integration/internal/adapters/memory"
	redisAdapter "github.com/RasimKhusaenov/alice-todoist-integration/internal/adapters/redis"
	"github.com/RasimKhusaenov/alice-todoist-integration/internal/adapters/todoist"
	"github.com/RasimKhusaenov/alice-todoist-integration/internal/config"
	"github.com/RasimKhusaenov/alice-todoist-integration/internal/dialog"
	"github.com/RasimKhusaenov/alice-todoist-integration/internal/logging"
	"github.com/RasimKhusaenov/alice-todoist-integration/internal/observability"
	"github.com/RasimKhusaenov/alice-todoist-integration/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the webhook HTTP server",
	Long:  `Starts the dialog engine in webhook mode, answering Alice turns over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error loading configuration: %v\n", err)
			os.Exit(1)
		}
		if cfg.TodoistToken == "" {
			fmt.Println("Todoist token is not configured (set TODOIST_APP_TOKEN)")
			os.Exit(1)
		}

		var logger *slog.Logger
		if cfg.Logging.Format == "json" {
			logger = logging.NewJSON(cfg.LogLevel())
		} else {
			logger = logging.New(cfg.LogLevel())
		}

		registry := prometheus.NewRegistry()
		metrics := observability.New(registry)

		tasks := todoist.New(cfg.TodoistToken, todoist.WithMetrics(metrics))

		var cache ports.TaskCache
		if cfg.Redis.Address != "" {
			redisCache := redisAdapter.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB,
				redisAdapter.WithTTL(cfg.Cache.TTL))
			defer redisCache.Close()
			cache = redisCache
			logger.Info("using redis task cache", "address", cfg.Redis.Address)
		} else {
			cache = memoryAdapter.NewCache(memoryAdapter.WithTTL(cfg.Cache.TTL))
		}

		engine := dialog.NewEngine(
			dialog.NewRegistry(dialog.Deps{Tasks: tasks, Cache: cache, Logger: logger}),
			dialog.WithLogger(logger),
			dialog.WithMetrics(metrics),
		)

		handler := httpAdapter.NewHandler(engine, registry,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithVersion(Version),
		)

		srv := &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
			Handler:      handler,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting webhook server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			logger.Error("server error", "error", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "error", err)
				}
			}
			logger.Info("webhook server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
