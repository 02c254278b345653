package extract

import (
	"fmt"
	"regexp"

	"github.com/okafor-chidi/catalog-digitizer/constants"
)

// Rule is one labeled extraction rule: a case-insensitive pattern with
// exactly one capturing group holding the value span.
type Rule struct {
	Field   constants.FieldName
	Pattern *regexp.Regexp
}

// Registry maps every catalog field to its extraction rule. Total and fixed:
// RuleFor answers for every member of constants.FieldNames and the mapping
// never changes after construction.
type Registry interface {
	RuleFor(field constants.FieldName) Rule
}

// Each pattern anchors on a label synonym ("accession" | "acc. no" |
// "catalog no" ...), then a separator (colon or whitespace), then a bounded
// value span. The bound keeps a field from swallowing the rest of the page
// when free text has no end-of-value delimiter; accession numbers are short
// alphanumeric tokens ending in a digit or a single sub-designation letter
// ("1987.22a"), while provenance and notes may run to 240 characters.
var defaultPatterns = map[constants.FieldName]string{
	constants.FieldAccessionNumber: `(?:accession|acc\.?|catalog(?:ue)?)\s*(?:no\.?|num\.?|number|#)?\s*(?::\s*|\s)([0-9a-z][0-9a-z.\-/]{0,22}[0-9][a-z]?)`,
	constants.FieldObjectName:      `object(?:\s+name)?\s*(?::\s*|\s)([^\n]{1,80})`,
	constants.FieldProvenance:      `provenance\s*(?::\s*|\s)([^\n]{1,240})`,
	constants.FieldSiteLocation:    `(?:site\s*/\s*location|site\s+location|site|location|find\s*spot)\s*(?::\s*|\s)([^\n]{1,120})`,
	constants.FieldMaterials:       `(?:materials?|medium)\s*(?::\s*|\s)([^\n]{1,120})`,
	constants.FieldDimensions:      `(?:dimensions?|measurements?|size)\s*(?::\s*|\s)([^\n]{1,80})`,
	constants.FieldDate:            `(?:dated?|period)\s*(?::\s*|\s)([^\n]{1,60})`,
	constants.FieldNotes:           `(?:notes?|remarks?|comments?)\s*(?::\s*|\s)([^\n]{1,240})`,
}

type regexRegistry struct {
	rules map[constants.FieldName]Rule
}

// NewRegistry compiles the default rule set. Panics on a malformed pattern,
// which is a programming error, not an input error.
func NewRegistry() Registry {
	rules := make(map[constants.FieldName]Rule, len(defaultPatterns))
	for _, field := range constants.FieldNames {
		pattern, ok := defaultPatterns[field]
		if !ok {
			panic(fmt.Sprintf("extract: no pattern registered for field %q", field))
		}
		rules[field] = Rule{
			Field:   field,
			Pattern: regexp.MustCompile(`(?i)\b` + pattern),
		}
	}
	return &regexRegistry{rules: rules}
}

func (r *regexRegistry) RuleFor(field constants.FieldName) Rule {
	return r.rules[field]
}
