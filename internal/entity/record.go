package entity

import "github.com/okafor-chidi/catalog-digitizer/constants"

// CatalogRecord is the fully extracted, normalized, review-annotated record
// for one page. Fields mirrors the closed constants.FieldNames set; every
// field key is always present (possibly empty string), so callers never
// observe a missing key.
//
// Year is genuinely optional: nil means no four-digit year was found in the
// date field, which is distinct from an empty date field.
type CatalogRecord struct {
	SourceFile  string
	Page        int
	RawText     string
	Fields      map[constants.FieldName]string
	NeedsReview bool
	Year        *string
}

// Field returns the value for one catalog field, empty string when the
// field was not recovered from the page.
func (r *CatalogRecord) Field(name constants.FieldName) string {
	return r.Fields[name]
}
