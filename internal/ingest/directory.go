package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/okafor-chidi/catalog-digitizer/constants"
	"github.com/okafor-chidi/catalog-digitizer/internal/entity"
)

// DirStats aggregates a directory walk.
type DirStats struct {
	Scanned uint32
	Matched uint32
	Loaded  uint32
	Failed  uint32
}

// rePageSuffix picks a page number out of filenames like
// "ledger-1923.page-4.txt" or "box12_p07.txt". Files without a page suffix
// are treated as single-page documents.
var rePageSuffix = regexp.MustCompile(`(?i)[._-](?:page|pg|p)[-_]?(\d+)$`)

// Ingestor reads OCR transcription files into raw pages.
type Ingestor struct {
	logger *slog.Logger
}

func NewIngestor(logger *slog.Logger) *Ingestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingestor{logger: logger}
}

// IngestDirectory walks root, loads every allowed transcription file, and
// returns one RawPage per file plus aggregate stats. Unreadable files are
// recorded in the stats and skipped; the walk keeps going.
func (u *Ingestor) IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]entity.RawPage, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var pages []entity.RawPage
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats.Scanned++
		if walkErr != nil {
			u.logger.Warn("ingest.walk.failed", "path", path, "err", walkErr)
			stats.Failed++
			return nil // continue walking
		}
		if skipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			return nil
		}
		stats.Matched++

		data, err := os.ReadFile(path)
		if err != nil {
			u.logger.Warn("ingest.read.failed", "path", path, "err", err)
			stats.Failed++
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		stem := strings.TrimSuffix(rel, filepath.Ext(rel))
		source, page := splitPageSuffix(stem)
		pages = append(pages, entity.RawPage{
			SourceFile: source,
			Page:       page,
			RawText:    string(data),
		})
		stats.Loaded++
		return nil
	})
	if err != nil {
		return pages, stats, fmt.Errorf("walk: %w", err)
	}

	u.logger.Info("ingest.ok",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"loaded", stats.Loaded,
		"failed", stats.Failed,
	)
	return pages, stats, nil
}

// splitPageSuffix derives (source_file, page) from a filename stem, the
// relative path with its extension already removed. Any page suffix is
// dropped from the source name, so the stems "ledger.page-2" and
// "ledger.page-3" share the source "ledger". A suffix with a page below 1
// is not a page marker; the stem stays intact and the page defaults to 1.
func splitPageSuffix(stem string) (string, int) {
	if m := rePageSuffix.FindStringSubmatch(stem); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
			return stem[:len(stem)-len(m[0])], n
		}
	}
	return stem, 1
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
