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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/TerrenceLGee/ExerciseTracker/internal/config"
	"github.com/TerrenceLGee/ExerciseTracker/internal/domain"
	"github.com/TerrenceLGee/ExerciseTracker/internal/logging"
	"github.com/TerrenceLGee/ExerciseTracker/internal/persistence/memory"
	"github.com/TerrenceLGee/ExerciseTracker/internal/persistence/postgres"
	"github.com/TerrenceLGee/ExerciseTracker/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string
	var driver string
	var logLevel string

	cmd := &cobra.Command{
		Use:           "tracker",
		Short:         "Personal fitness tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if driver != "" {
				cfg.StorageDriver = driver
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&driver, "driver", "", "storage driver (postgres or memory)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	var exerciserRepo domain.ExerciserRepository
	var exerciseRepo domain.ExerciseRepository

	switch cfg.StorageDriver {
	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return fmt.Errorf("connect to postgres: %w", err)
		}
		defer pool.Close()

		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			return err
		}
		exerciserRepo = postgres.NewExerciserRepository(pool, logger)
		exerciseRepo = postgres.NewExerciseRepository(pool, logger)
	case config.DriverMemory:
		store := memory.New()
		exerciserRepo = store.Exercisers()
		exerciseRepo = store.Exercises()
	default:
		return fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	if cfg.MetricsAddress != "" {
		startMetricsListener(ctx, cfg.MetricsAddress, logger)
	}

	clock := clockwork.NewRealClock()
	exercisers := domain.NewExerciserService(exerciserRepo, clock, logger)
	exercises := domain.NewExerciseService(exerciseRepo, exerciserRepo, clock, logger)

	menu := ui.New(exercisers, exercises, os.Stdin, os.Stdout)
	return menu.Run(ctx)
}

func startMetricsListener(ctx context.Context, address string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         address,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("metrics listening", "address", address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()
}
