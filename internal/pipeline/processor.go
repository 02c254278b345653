package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/okafor-chidi/catalog-digitizer/internal/common"
	"github.com/okafor-chidi/catalog-digitizer/internal/entity"
)

// Processor runs a batch of raw pages through the Assembler, fanning out
// across a bounded worker pool. Pages are independent, so order of
// processing is free; output order is not worker-completion order but a
// stable sort by (source_file, page), keeping exports reproducible.
type Processor struct {
	logger    *slog.Logger
	assembler *Assembler
	workers   int
}

func NewProcessor(logger *slog.Logger, assembler *Assembler, workers int) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if assembler == nil {
		assembler = NewAssembler(logger, nil, nil)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Processor{logger: logger, assembler: assembler, workers: workers}
}

// Run validates the upstream contract for every page, then assembles all of
// them. A page without a source file or with a page number < 1 fails the
// whole batch before any work starts; silently coercing it would corrupt
// the (source_file, page) keys downstream.
func (p *Processor) Run(ctx context.Context, pages []entity.RawPage) ([]entity.CatalogRecord, error) {
	batchID := uuid.New()
	for i := range pages {
		if err := validatePage(pages[i]); err != nil {
			return nil, fmt.Errorf("page %d of %d: %w", i+1, len(pages), err)
		}
	}

	p.logger.Info("pipeline.start",
		"batch_id", batchID, "pages", len(pages), "workers", p.workers)

	records := make([]entity.CatalogRecord, len(pages))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				records[i] = p.assembler.Assemble(pages[i])
			}
		}()
	}

send:
	for i := range pages {
		select {
		case <-ctx.Done():
			break send
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].SourceFile != records[j].SourceFile {
			return records[i].SourceFile < records[j].SourceFile
		}
		return records[i].Page < records[j].Page
	})

	flagged := 0
	for i := range records {
		if records[i].NeedsReview {
			flagged++
		}
	}
	p.logger.Info("pipeline.ok",
		"batch_id", batchID, "records", len(records), "needs_review", flagged)
	return records, nil
}

// validatePage enforces the upstream collaborator contract. A null raw_text
// is fine (it decodes to ""); a missing source file or page number is not.
func validatePage(page entity.RawPage) error {
	v := common.NewValidator()
	v.Field("source_file", page.SourceFile, common.Required)
	v.Field("page", page.Page, common.MinInt(1))
	if v.HasErrors() {
		return common.ContractViolationf("%s", v.ErrorMessage())
	}
	return nil
}
