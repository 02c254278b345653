package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/okafor-chidi/catalog-digitizer/internal/common"
	"github.com/okafor-chidi/catalog-digitizer/internal/entity"
	"github.com/okafor-chidi/catalog-digitizer/internal/export"
	"github.com/okafor-chidi/catalog-digitizer/internal/extract"
	"github.com/okafor-chidi/catalog-digitizer/internal/ingest"
	"github.com/okafor-chidi/catalog-digitizer/internal/pipeline"
	repo "github.com/okafor-chidi/catalog-digitizer/internal/repository"
	"github.com/okafor-chidi/catalog-digitizer/internal/review"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		dir      = flag.String("dir", "", "directory of OCR transcription files (.txt)")
		manifest = flag.String("manifest", "", "JSON page manifest (alternative to -dir)")
		out      = flag.String("out", "", "output file path (optional, defaults next to the input)")
		format   = flag.String("format", "csv", "output format: csv, json or xlsx")
		inmem    = flag.Bool("inmem", false, "persist records to an in-memory SQLite database")
	)
	flag.Parse()

	// Validate required flags
	if (*dir == "") == (*manifest == "") {
		printError("Error: exactly one of -dir or -manifest is required\n")
		os.Exit(1)
	}
	switch *format {
	case "csv", "json", "xlsx":
	default:
		printError("Error: -format must be csv, json or xlsx\n")
		os.Exit(1)
	}

	input := *dir
	if input == "" {
		input = *manifest
	}
	if *out == "" {
		parentDir := filepath.Dir(input)
		*out = filepath.Join(parentDir, "catalog."+*format)
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// Load configuration
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Collect raw pages
	var (
		pages []entity.RawPage
		err   error
	)
	if *dir != "" {
		ingestor := ingest.NewIngestor(logger)
		pages, _, err = ingestor.IngestDirectory(ctx, *dir, true)
	} else {
		var data []byte
		if data, err = os.ReadFile(*manifest); err == nil {
			pages, err = ingest.ReadManifest(data)
		}
	}
	if err != nil {
		logger.Error("failed to collect pages", "input", input, "error", err)
		os.Exit(1)
	}
	if len(pages) == 0 {
		logger.Warn("no pages found", "input", input)
	}

	// Wire the engine
	classifier := review.NewClassifier(review.Config{
		MinTextLength:    cfg.Review.MinTextLength,
		RequireAccession: cfg.Review.RequireAccession,
	})
	assembler := pipeline.NewAssembler(logger, extract.NewExtractor(nil), classifier)
	processor := pipeline.NewProcessor(logger, assembler, cfg.Pipeline.Workers)

	records, err := processor.Run(ctx, pages)
	if err != nil {
		logger.Error("pipeline failed", "error", err)
		os.Exit(1)
	}

	// Persist when a store is configured
	if cfg.Database.DSN != "" || *inmem {
		if *inmem {
			cfg.Database.DSN = repo.InMemoryDSN
		}
		if err := persist(ctx, cfg, logger, records); err != nil {
			logger.Error("failed to persist records", "error", err)
			os.Exit(1)
		}
	}

	// Export
	if err := writeOutput(cfg, logger, records, *format, *out); err != nil {
		logger.Error("failed to export records", "format", *format, "error", err)
		os.Exit(1)
	}

	flagged := 0
	for i := range records {
		if records[i].NeedsReview {
			flagged++
		}
	}
	logger.Info("batch complete",
		"pages", len(pages),
		"records", len(records),
		"needs_review", flagged,
		"output", *out,
	)
}

func persist(ctx context.Context, cfg *common.Config, logger *slog.Logger, records []entity.CatalogRecord) error {
	db, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer repo.Close(db, logger)

	recordsRepo := repo.NewCatalogRecordRepository(db, cfg.Database.DSN, logger)
	if err := recordsRepo.Init(ctx); err != nil {
		return err
	}
	batchID := uuid.New()
	for i := range records {
		if err := recordsRepo.Upsert(ctx, batchID, &records[i]); err != nil {
			return err
		}
	}
	logger.Info("records persisted", "batch_id", batchID, "count", len(records))
	return nil
}

func writeOutput(cfg *common.Config, logger *slog.Logger, records []entity.CatalogRecord, format, out string) error {
	var buf bytes.Buffer
	switch format {
	case "csv":
		if err := export.WriteCSV(&buf, records); err != nil {
			return err
		}
	case "json":
		if err := export.WriteJSON(&buf, records); err != nil {
			return err
		}
	case "xlsx":
		svc := export.NewXLSXService(cfg.Export.SheetName, logger)
		data, err := svc.ExportXLSX(records)
		if err != nil {
			return err
		}
		buf.Write(data)
	}
	return os.WriteFile(out, buf.Bytes(), 0644)
}
