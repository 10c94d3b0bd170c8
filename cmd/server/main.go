package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bgibson72/employee-schedule-manager/internal/config"
	"github.com/bgibson72/employee-schedule-manager/pkg/api"
	"github.com/bgibson72/employee-schedule-manager/pkg/auth"
	"github.com/bgibson72/employee-schedule-manager/pkg/core/services"
	"github.com/bgibson72/employee-schedule-manager/pkg/postgres"
	"github.com/bgibson72/employee-schedule-manager/pkg/utils/logging"
)

// App holds the application dependencies
type App struct {
	cfg      *config.Config
	database *postgres.DB
	tokens   *auth.Manager
	logger   *zap.Logger
	ctx      context.Context
}

var (
	env        string
	configPath string
	app        *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "schedule-manager",
		Short: "Employee Schedule Manager - shift coverage service",
		Long:  `Backend service for employee shift scheduling: coverage requests, claims, returns, and completions with an append-only audit trail.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.logger != nil {
					app.logger.Sync()
				}
				if app.database != nil {
					app.database.Close()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: dev, prod, etc.)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (defaults to schedule_manager_config.yaml)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedShiftsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, database, and the token manager
func initApp() error {
	var err error
	app = &App{
		ctx: context.Background(),
	}

	app.logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.logger.Info("Starting application", zap.String("environment", env))

	app.logger.Info("Loading configuration")
	if configPath != "" {
		app.cfg, err = config.LoadFromPath(configPath)
	} else {
		app.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.logger.Debug("Configuration loaded successfully")

	app.logger.Info("Connecting to database")
	app.database, err = postgres.NewDB(app.ctx, app.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.logger.Debug("Database connection established")

	app.tokens = auth.NewManager(app.cfg.JWTSecret, app.cfg.TokenTTL())

	return nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.database.RunMigrations(app.ctx); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			app.logger.Info("Migrations applied")

			router := api.NewRouter(app.database, app.tokens, app.logger)
			server := &http.Server{
				Addr:    app.cfg.ListenAddr,
				Handler: router,
			}

			errCh := make(chan error, 1)
			go func() {
				app.logger.Info("HTTP server listening", zap.String("addr", app.cfg.ListenAddr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return fmt.Errorf("server error: %w", err)
			case sig := <-quit:
				app.logger.Info("Shutting down", zap.String("signal", sig.String()))
			}

			shutdownCtx, cancel := context.WithTimeout(app.ctx, 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("failed to shut down server: %w", err)
			}

			app.logger.Info("Server stopped")
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.database.RunMigrations(app.ctx); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			fmt.Println("Migrations applied successfully.")
			return nil
		},
	}
}

func seedShiftsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seedShifts [start_date]",
		Short: "Expand configured shift templates into shift rows (defaults to today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from := time.Now()
			if len(args) > 0 {
				parsed, err := time.Parse("2006-01-02", args[0])
				if err != nil {
					return fmt.Errorf("start_date must be yyyy-MM-dd: %w", err)
				}
				from = parsed
			}

			if len(app.cfg.ShiftTemplates) == 0 {
				fmt.Println("No shift templates configured - nothing to seed.")
				return nil
			}

			shifts, err := services.SeedShifts(app.ctx, app.database, app.cfg.ShiftTemplates, app.logger, from)
			if err != nil {
				return err
			}

			fmt.Printf("\nSeeded %d shifts:\n\n", len(shifts))
			for _, shift := range shifts {
				fmt.Printf("  %s  %s-%s  %s\n", shift.Date, shift.StartTime, shift.EndTime, shift.EmployeeName)
			}
			fmt.Println()

			return nil
		},
	}
}
