package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/arvindkm/bankledger/internal/cli"
	"github.com/arvindkm/bankledger/internal/core/services"
	"github.com/arvindkm/bankledger/internal/platform/logging"
	"github.com/arvindkm/bankledger/internal/repositories/database/pgsql"
	"github.com/arvindkm/bankledger/migrations"
	"github.com/arvindkm/bankledger/pkg/config"
	"github.com/arvindkm/bankledger/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Structured logs go to stderr so menu output on stdout stays clean.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx := logging.WithLogger(context.Background(), logger)

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	accountRepo := pgsql.NewAccountRepository(dbPool)
	customerRepo := pgsql.NewCustomerRepository(dbPool)
	ledgerRepo := pgsql.NewLedgerRepository(dbPool, accountRepo)

	customerService := services.NewCustomerService(customerRepo)
	accountService := services.NewAccountService(accountRepo, customerRepo)
	ledgerService := services.NewLedgerService(ledgerRepo, accountRepo)

	shell := cli.New(os.Stdin, os.Stdout, customerService, accountService, ledgerService)
	if err := shell.Run(ctx); err != nil {
		logger.Error("Fatal storage error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies the embedded schema. The migration is idempotent, so
// an existing database passes through untouched.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	// Open a temporary database/sql connection for migrations, using the
	// pgx stdlib driver to stay compatible with the main pool.
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
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
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Database migrations applied")
	}
	return nil
}
