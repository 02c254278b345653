package pipeline

import (
	"log/slog"

	"github.com/okafor-chidi/catalog-digitizer/constants"
	"github.com/okafor-chidi/catalog-digitizer/internal/entity"
	"github.com/okafor-chidi/catalog-digitizer/internal/extract"
	"github.com/okafor-chidi/catalog-digitizer/internal/normalize"
	"github.com/okafor-chidi/catalog-digitizer/internal/review"
)

// Assembler folds one raw page through extract -> normalize -> classify into
// a complete CatalogRecord. Pure per page: no shared mutable state, so one
// Assembler is safe for concurrent use across workers.
type Assembler struct {
	logger     *slog.Logger
	extractor  extract.FieldExtractor
	classifier *review.Classifier
}

func NewAssembler(logger *slog.Logger, extractor extract.FieldExtractor, classifier *review.Classifier) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	if extractor == nil {
		extractor = extract.NewExtractor(nil)
	}
	if classifier == nil {
		classifier = review.NewClassifier(review.DefaultConfig())
	}
	return &Assembler{logger: logger, extractor: extractor, classifier: classifier}
}

// Assemble builds the record for one page. The review decision sees the
// normalized fields but the raw, untouched transcription text.
func (a *Assembler) Assemble(page entity.RawPage) entity.CatalogRecord {
	fields := a.extractor.Extract(page.RawText)
	for name, value := range fields {
		fields[name] = normalize.Field(name, value)
	}
	return entity.CatalogRecord{
		SourceFile:  page.SourceFile,
		Page:        page.Page,
		RawText:     page.RawText,
		Fields:      fields,
		NeedsReview: a.classifier.NeedsReview(fields, page.RawText),
		Year:        yearFrom(fields[constants.FieldDate]),
	}
}

// yearFrom returns the first run of exactly four consecutive digits in the
// date value, nil when there is none. Longer digit runs do not count:
// "19th" has too few, "190210" too many.
func yearFrom(date string) *string {
	start := -1
	for i := 0; i <= len(date); i++ {
		isDigit := i < len(date) && date[i] >= '0' && date[i] <= '9'
		if isDigit {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if i-start == 4 {
				year := date[start:i]
				return &year
			}
			start = -1
		}
	}
	return nil
}
