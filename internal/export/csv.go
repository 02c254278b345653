package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/okafor-chidi/catalog-digitizer/internal/entity"
)

// WriteCSV writes the record collection as one header row plus one row per
// record. encoding/csv applies RFC 4180 quoting, so embedded newlines and
// commas in raw text survive unmangled.
func WriteCSV(w io.Writer, records []entity.CatalogRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	for i := range records {
		if err := cw.Write(Row(&records[i])); err != nil {
			return fmt.Errorf("csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
