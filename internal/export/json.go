package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/okafor-chidi/catalog-digitizer/internal/entity"
)

// WriteJSON writes the record collection as an ordered JSON array, one flat
// object per record. Lossless for all string fields; the only lossiness in
// the whole pipeline is the object_name title casing applied upstream.
func WriteJSON(w io.Writer, records []entity.CatalogRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if records == nil {
		records = []entity.CatalogRecord{}
	}
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	return nil
}

// ReadJSON reads back a collection written by WriteJSON. Round-trips field
// for field; every record comes back with all catalog field keys present.
func ReadJSON(r io.Reader) ([]entity.CatalogRecord, error) {
	var records []entity.CatalogRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}
