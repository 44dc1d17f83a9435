package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursehub/config"
	"coursehub/database"
	"coursehub/logger"
	"coursehub/server"
	"coursehub/utils"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Port string
	Seed bool
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Connects to the configured database, runs migrations, starts the
background scheduler and listens until interrupted.

Example:
  coursehub serve --port 5000
  DB_DRIVER=postgres DATABASE_URL=postgres://... coursehub serve --seed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				config.AppConfig.Port = opts.Port
			}
			if cmd.Flags().Changed("seed") {
				config.AppConfig.SeedOnStart = opts.Seed
			}
			return runServer(cmd.Context(), config.AppConfig)
		},
	}

	cmd.Flags().StringVarP(&opts.Port, "port", "p", "", "listen port (overrides PORT)")
	cmd.Flags().BoolVar(&opts.Seed, "seed", false, "load the sample catalog when it is empty")

	return cmd
}

func runServer(parent context.Context, cfg *config.Config) error {
	if err := database.ConnectDb(cfg); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("error closing database", "error", err)
		}
	}()

	if cfg.SeedOnStart {
		if _, err := seedCatalog(parent); err != nil {
			logger.Error("seeding failed", "error", err)
		}
	}

	scheduler, err := utils.InitializeScheduler(utils.SchedulerConfig{
		HealthCheckSpec: cfg.HealthCheckSpec,
		RecountSpec:     cfg.RecountSpec,
	}, func() database.DbInstance { return database.Database })
	if err != nil {
		return err
	}
	defer scheduler.Stop()

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := server.New()
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port, "prefix", cfg.APIPrefix)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped gracefully")
	return nil
}
