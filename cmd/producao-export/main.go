package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/imxdigital/producao-tracker/constants"
	"github.com/imxdigital/producao-tracker/internal/common"
	"github.com/imxdigital/producao-tracker/internal/entity"
	"github.com/imxdigital/producao-tracker/internal/export"
	"github.com/imxdigital/producao-tracker/internal/producao"
	"github.com/imxdigital/producao-tracker/internal/repository"
)

// One-shot export of the filtered job listing to a local XLSX file.
func main() {
	var (
		numeroFO = flag.String("fo", "", "job number filter (substring)")
		numeroORC = flag.String("orc", "", "order number filter (substring)")
		campanha = flag.String("campanha", "", "campaign name filter (substring)")
		cliente  = flag.String("cliente", "", "customer name filter (substring)")
		item     = flag.String("item", "", "item description search term")
		codigo   = flag.String("codigo", "", "item code search term")
		tab      = flag.String("tab", "", "tab: em_curso | pendentes | concluidos")
		out      = flag.String("out", "producao.xlsx", "output file path")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if *tab != "" && !constants.Tab(*tab).IsValid() {
		logger.Error("unknown tab", "tab", *tab)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
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

	jobsRepo := repository.NewJobsRepository(db, repository.Dialect, logger)
	itemsRepo := repository.NewItemsRepository(db, repository.Dialect, logger)
	logisticaRepo := repository.NewLogisticaRepository(db, repository.Dialect, logger)
	clientesRepo := repository.NewClientesRepository(db, repository.Dialect, logger)
	phcRepo := repository.NewPHCRepository(db, repository.Dialect, "phc", cfg.Listing.PHCLookupTimeout, logger)

	listing := producao.NewService(jobsRepo, itemsRepo, logisticaRepo, phcRepo, cfg.Listing, logger)
	exportSvc := export.NewService(listing, clientesRepo, logger)

	criteria := entity.FilterCriteria{
		NumeroFO:  *numeroFO,
		NumeroORC: *numeroORC,
		Campanha:  *campanha,
		Cliente:   *cliente,
		Item:      *item,
		Codigo:    *codigo,
		Tab:       constants.Tab(*tab),
	}
	data, err := exportSvc.ExportJobsXLSX(ctx, criteria)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("export written", "path", *out)
}
