package main

import (
	"context"
	"flag"
	"os"

	"github.com/deniz/campushub/internal/app/repositories"
	"github.com/deniz/campushub/internal/bootstrap"
	"github.com/deniz/campushub/internal/ingest"
	"github.com/deniz/campushub/internal/intra"
	"github.com/deniz/campushub/internal/pkg/logger"
)

func main() {
	cursusID := flag.Int("cursus-id", 21, "cursus whose projects are ingested")
	limit := flag.Int("limit", 0, "stop after this many created+updated projects (0 = no limit)")
	debug := flag.Bool("debug", false, "write per-category rejection files to the diagnostics directory")
	diagnosticsDir := flag.String("diagnostics-dir", ".", "directory for rejection files when -debug is set")
	flag.Parse()

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	if cfg.Intra.UID == "" || cfg.Intra.Secret == "" {
		lgr.Error().Msg("API credentials missing, set INTRA_UID and INTRA_SECRET")
		os.Exit(1)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to setup database")
		os.Exit(1)
	}
	defer dbPool.Close()

	var sink ingest.DiagnosticSink
	if *debug {
		fileSink, err := ingest.NewFileSink(*diagnosticsDir)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to create diagnostics files")
			os.Exit(1)
		}
		defer func() {
			if err := fileSink.Close(); err != nil {
				lgr.Error().Err(err).Msg("Failed to close diagnostics files")
			}
		}()
		sink = fileSink
	}

	client := intra.NewClient(cfg.Intra.BaseURL, cfg.Intra.UID, cfg.Intra.Secret)
	projectRepo := repositories.NewProjectRepository(dbPool)
	runner := ingest.NewRunner(client, projectRepo, sink, lgr)

	result, err := runner.Run(context.Background(), ingest.Config{
		CursusID: *cursusID,
		Limit:    *limit,
	})
	if err != nil {
		lgr.Error().Err(err).
			Int("created", result.Created).
			Int("updated", result.Updated).
			Int("pages", result.Pages).
			Msg("Ingestion aborted")
		os.Exit(1)
	}

	lgr.Info().
		Int("created", result.Created).
		Int("updated", result.Updated).
		Int("pages", result.Pages).
		Msg("Ingestion finished")
}
