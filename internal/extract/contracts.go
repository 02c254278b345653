package extract

import "github.com/okafor-chidi/catalog-digitizer/constants"

// FieldExtractor is the interface the pipeline depends on. The default
// implementation is regex-based; keeping the pipeline on this interface lets
// a stricter tokenizer replace the pattern rules without touching callers.
type FieldExtractor interface {
	// Extract returns one value per catalog field. Every key in
	// constants.FieldNames is present; fields with no match map to "".
	Extract(text string) map[constants.FieldName]string
}
