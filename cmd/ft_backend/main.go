package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/core/services"
	"github.com/SscSPs/finance_tracker/internal/handlers"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/SscSPs/finance_tracker/internal/platform/migrations"
	"github.com/SscSPs/finance_tracker/internal/repositories/cache"
	"github.com/SscSPs/finance_tracker/internal/repositories/database/pgsql"
	"github.com/SscSPs/finance_tracker/internal/repositories/database/sqlite"
	"github.com/SscSPs/finance_tracker/internal/repositories/memory"
	"github.com/SscSPs/finance_tracker/internal/utils"
	"github.com/SscSPs/finance_tracker/pkg/database"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const shutdownTimeout = 10 * time.Second

// @title Finance Tracker API
// @version 1.0
// @description Personal income and expense tracking with sorted lists and spending dashboards.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeStorage, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStorage()

	if cfg.CacheEnabled {
		cached, err := cache.NewTransactionRepository(repos.TransactionRepo, cfg.CacheTTL)
		if err != nil {
			return err
		}
		defer cached.Close()
		repos.TransactionRepo = cached
		logger.Info("Transaction list cache enabled", slog.Duration("ttl", cfg.CacheTTL))
	}

	serviceContainer := services.NewServiceContainer(cfg, repos)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))
	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, posthogClient); err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("Server stopped")
	return nil
}

// openStorage connects the configured storage driver, applies migrations for
// the SQL drivers and returns the repositories with a matching cleanup.
func openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		logger.Info("Database connection pool established.")

		// migrate needs a database/sql handle; the pgx stdlib driver keeps it on the same driver as the pool
		migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			database.ClosePgxPool(dbPool)
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to open database connection for migrations: %w", err)
		}
		defer func() {
			if cerr := migrationDB.Close(); cerr != nil {
				logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
			}
		}()
		if err := applyMigrations(logger, func() (bool, error) { return migrations.RunPostgres(migrationDB) }); err != nil {
			database.ClosePgxPool(dbPool)
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil

	case config.StorageSQLite:
		db, err := database.NewSQLiteDB(ctx, cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		if err := applyMigrations(logger, func() (bool, error) { return migrations.RunSQLite(db) }); err != nil {
			_ = db.Close()
			return portsrepo.RepositoryProvider{}, nil, err
		}
		closeDB := func() {
			if err := db.Close(); err != nil {
				logger.Error("Error closing sqlite database", slog.String("error", err.Error()))
			}
		}
		return sqlite.NewRepositoryProvider(db), closeDB, nil

	default:
		logger.Warn("Using in-memory storage; data is lost on restart")
		return memory.NewRepositoryProvider(), func() {}, nil
	}
}

func applyMigrations(logger *slog.Logger, migrate func() (bool, error)) error {
	logger.Info("Running database migrations...")
	applied, err := migrate()
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}
	return nil
}
