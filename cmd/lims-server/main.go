package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/metacore/lims/internal/config"
	"github.com/metacore/lims/internal/domain/account"
	"github.com/metacore/lims/internal/domain/catalog"
	"github.com/metacore/lims/internal/domain/doctor"
	"github.com/metacore/lims/internal/domain/labinfo"
	"github.com/metacore/lims/internal/domain/patient"
	"github.com/metacore/lims/internal/domain/report"
	"github.com/metacore/lims/internal/domain/result"
	"github.com/metacore/lims/internal/platform/apperr"
	"github.com/metacore/lims/internal/platform/auth"
	"github.com/metacore/lims/internal/platform/db"
	"github.com/metacore/lims/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lims-server",
		Short: "Clinical lab management API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			count, err := db.NewMigrator(pool, dir).Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			statuses, err := db.NewMigrator(pool, dir).Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load seed data",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "catalog",
		Short: "Load the stock test catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			count, err := catalog.NewService(catalog.NewRepoPG(pool)).Seed(ctx)
			if err != nil {
				return fmt.Errorf("seed failed after %d entries: %w", count, err)
			}
			fmt.Printf("Seeded %d catalog entr(ies).\n", count)
			return nil
		},
	})

	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	signer := auth.NewSigner(cfg.JWTSecret)

	// Repositories
	patientRepo := patient.NewRepoPG(pool)
	catalogRepo := catalog.NewRepoPG(pool)
	resultRepo := result.NewRepoPG(pool)
	reportRepo := report.NewRepoPG(pool)
	labInfoRepo := labinfo.NewRepoPG(pool)
	doctorRepo := doctor.NewRepoPG(pool)
	accountRepo := account.NewRepoPG(pool)

	// Services
	patientSvc := patient.NewService(patientRepo)
	catalogSvc := catalog.NewService(catalogRepo)
	resultSvc := result.NewService(resultRepo, patientRepo, pool)
	reportSvc := report.NewService(reportRepo, patientRepo, resultRepo)
	labInfoSvc := labinfo.NewService(labInfoRepo)
	doctorSvc := doctor.NewService(doctorRepo)
	accountSvc := account.NewService(accountRepo, signer, pool, logger)

	// First boot on an empty database creates the admin login.
	if err := accountSvc.Bootstrap(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Fatal().Err(err).Msg("failed to bootstrap admin account")
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = apperr.HTTPErrorHandler(logger)

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/health", db.HealthHandler(pool))

	// Public routes
	api := e.Group("/api")
	account.NewHandler(accountSvc).RegisterPublicRoutes(api)

	// Protected routes
	protected := e.Group("/api", auth.Middleware(signer))
	patient.NewHandler(patientSvc).RegisterRoutes(protected)
	catalog.NewHandler(catalogSvc).RegisterRoutes(protected)
	result.NewHandler(resultSvc).RegisterRoutes(protected)
	report.NewHandler(reportSvc).RegisterRoutes(protected)
	labinfo.NewHandler(labInfoSvc).RegisterRoutes(protected)
	doctor.NewHandler(doctorSvc).RegisterRoutes(protected)
	account.NewHandler(accountSvc).RegisterRoutes(protected)

	// Start server with graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
