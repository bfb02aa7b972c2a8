// Command vaxsched is the vaccine appointment scheduling CLI.
package main

import (
	"bufio"
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"vaxsched/internal/cli"
	"vaxsched/internal/config"
	"vaxsched/internal/migrate"
	"vaxsched/internal/repository/postgres"
	"vaxsched/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main parses configuration, runs migrations, wires repositories and starts
// the interactive command loop.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	dsn := flag.String("dsn", cfg.DB.BuildDSN(), "PostgreSQL DSN")
	skipMigrate := flag.Bool("skip-migrate", false, "do not run migrations on startup")
	flag.Parse()

	logger := newLogger(cfg.Log.Level)
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !*skipMigrate {
		if err := migrate.Up(ctx, *dsn); err != nil {
			logger.Fatal("migrate up", zap.Error(err))
		}
	}

	db, err := postgres.New(ctx, *dsn)
	if err != nil {
		logger.Fatal("postgres.New", zap.Error(err))
	}
	defer db.Close()

	credRepo := postgres.NewCredentialRepo(db)
	vaccineRepo := postgres.NewVaccineRepo(db)
	availabilityRepo := postgres.NewAvailabilityRepo(db)
	reservationRepo := postgres.NewReservationRepo(db)
	scheduleRepo := postgres.NewScheduleRepo(db)

	authSvc := service.NewAuthService(credRepo)
	schedSvc := service.NewSchedulingService(availabilityRepo, vaccineRepo, reservationRepo, scheduleRepo)

	app := cli.NewApp(authSvc, schedSvc, os.Stdout, logger)
	if err := app.Run(ctx, bufio.NewScanner(os.Stdin)); err != nil {
		logger.Error("terminated on storage fault", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
