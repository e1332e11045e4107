package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/imxdigital/producao-tracker/internal/common"
	"github.com/imxdigital/producao-tracker/internal/export"
	"github.com/imxdigital/producao-tracker/internal/producao"
	"github.com/imxdigital/producao-tracker/internal/repository"
	"github.com/imxdigital/producao-tracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(db, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	jobsRepo := repository.NewJobsRepository(db, repository.Dialect, logger)
	itemsRepo := repository.NewItemsRepository(db, repository.Dialect, logger)
	logisticaRepo := repository.NewLogisticaRepository(db, repository.Dialect, logger)
	clientesRepo := repository.NewClientesRepository(db, repository.Dialect, logger)
	phcRepo := repository.NewPHCRepository(db, repository.Dialect, "phc", cfg.Listing.PHCLookupTimeout, logger)

	listing := producao.NewService(jobsRepo, itemsRepo, logisticaRepo, phcRepo, cfg.Listing, logger)
	exportSvc := export.NewService(listing, clientesRepo, logger)
	srv := server.New(cfg.Server, listing, exportSvc, clientesRepo, logger)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.Start(); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
