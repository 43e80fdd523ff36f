package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/preqsy/monetra-server/internal/adapters/rates"
	"github.com/preqsy/monetra-server/internal/core/conversion"
	portsrepo "github.com/preqsy/monetra-server/internal/core/ports/repositories"
	"github.com/preqsy/monetra-server/internal/core/services"
	"github.com/preqsy/monetra-server/internal/handlers"
	"github.com/preqsy/monetra-server/internal/middleware"
	"github.com/preqsy/monetra-server/internal/platform/config"
	"github.com/preqsy/monetra-server/internal/platform/refdata"
	"github.com/preqsy/monetra-server/internal/repositories/database/pgsql"
	"github.com/preqsy/monetra-server/pkg/database"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)

	if err := seedCurrencies(ctx, repos); err != nil {
		logger.Error("Failed to seed currency reference data", slog.String("error", err.Error()))
		os.Exit(1)
	}

	table, err := refdata.DecimalTable()
	if err != nil {
		logger.Error("Failed to load currency decimal table", slog.String("error", err.Error()))
		os.Exit(1)
	}
	codec := conversion.NewCodec(table)

	rateProvider := rates.NewClient(cfg.ExchangeRateBaseURL, cfg.ExchangeRateAPIKey)
	serviceContainer := services.NewServiceContainer(repos, rateProvider, codec)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations over a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// seedCurrencies upserts the embedded currency reference data so that code
// and decimal-place lookups work against the database from the first boot.
func seedCurrencies(ctx context.Context, repos portsrepo.RepositoryProvider) error {
	currencies, err := refdata.Currencies()
	if err != nil {
		return err
	}
	for _, currency := range currencies {
		if err := repos.CurrencyRepo.SaveCurrency(ctx, currency); err != nil {
			return err
		}
	}
	return nil
}
