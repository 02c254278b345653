package constants

// FieldName identifies one extractable catalog field.
type FieldName string

// Stable values (these exact strings appear as export column headers and JSON keys).
const (
	FieldAccessionNumber FieldName = "accession_number"
	FieldObjectName      FieldName = "object_name"
	FieldProvenance      FieldName = "provenance"
	FieldSiteLocation    FieldName = "site_location"
	FieldMaterials       FieldName = "materials"
	FieldDimensions      FieldName = "dimensions"
	FieldDate            FieldName = "date"
	FieldNotes           FieldName = "notes"
)

// FieldNames holds every catalog field in display order. The set is closed;
// exports and record assembly iterate this slice, never a map, so column
// order is stable.
var FieldNames = []FieldName{
	FieldAccessionNumber,
	FieldObjectName,
	FieldProvenance,
	FieldSiteLocation,
	FieldMaterials,
	FieldDimensions,
	FieldDate,
	FieldNotes,
}

// IsFieldName reports whether s is one of the known catalog fields.
func IsFieldName(s string) bool {
	for _, f := range FieldNames {
		if string(f) == s {
			return true
		}
	}
	return false
}
