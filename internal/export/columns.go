package export

import (
	"strconv"

	"github.com/okafor-chidi/catalog-digitizer/constants"
	"github.com/okafor-chidi/catalog-digitizer/internal/entity"
)

// Header returns the fixed column order shared by every tabular export:
// page identity, raw text, the catalog fields in display order, then the
// review flag and derived year.
func Header() []string {
	cols := []string{"source_file", "page", "raw_text"}
	for _, f := range constants.FieldNames {
		cols = append(cols, string(f))
	}
	return append(cols, "needs_review", "year")
}

// Row renders one record in Header order. String fields pass through
// untruncated; an absent year becomes an empty cell, which tabular formats
// cannot distinguish from an empty string (the JSON export can).
func Row(r *entity.CatalogRecord) []string {
	row := []string{r.SourceFile, strconv.Itoa(r.Page), r.RawText}
	for _, f := range constants.FieldNames {
		row = append(row, r.Fields[f])
	}
	row = append(row, strconv.FormatBool(r.NeedsReview))
	if r.Year != nil {
		row = append(row, *r.Year)
	} else {
		row = append(row, "")
	}
	return row
}
