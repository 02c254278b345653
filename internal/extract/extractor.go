package extract

import (
	"regexp"
	"strings"

	"github.com/okafor-chidi/catalog-digitizer/constants"
)

// labelBoundary matches any registered field label followed by a colon.
// RE2 has no lookahead, so a bounded capture cannot stop at the next label
// by pattern alone; the extractor clips a captured value at the first
// interior boundary match instead. Whitespace-separated labels are left
// alone: without the colon a bare word like "site" inside a provenance
// value is not evidence of a new field.
var labelBoundary = regexp.MustCompile(`(?i)\b(?:accession(?:\s+(?:no|num|number))?|acc\.?\s*(?:no|num)\.?|catalog(?:ue)?(?:\s+(?:no|number))?|object(?:\s+name)?|provenance|site\s*/?\s*location|site|location|find\s*spot|materials?|medium|dimensions?|measurements?|size|dated?|period|notes?|remarks?|comments?)\s*:`)

// valueCutset is the punctuation stripped from both ends of a captured
// value, in addition to whitespace.
const valueCutset = " \t\r\n.;:"

// Extractor applies a Registry to free-form page text. Pure: identical text
// and registry always produce identical output.
type Extractor struct {
	registry Registry
}

// NewExtractor returns an Extractor over reg, defaulting to the built-in
// registry when reg is nil.
func NewExtractor(reg Registry) *Extractor {
	if reg == nil {
		reg = NewRegistry()
	}
	return &Extractor{registry: reg}
}

// Extract searches text once per field and returns the first match for each.
// Fields match independently; overlapping spans between fields are fine.
// Empty or whitespace-only text yields an all-empty mapping, not an error.
func (e *Extractor) Extract(text string) map[constants.FieldName]string {
	out := make(map[constants.FieldName]string, len(constants.FieldNames))
	for _, field := range constants.FieldNames {
		out[field] = e.extractField(field, text)
	}
	return out
}

func (e *Extractor) extractField(field constants.FieldName, text string) string {
	rule := e.registry.RuleFor(field)
	m := rule.Pattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return cleanValue(m[1])
}

// cleanValue clips the capture at the start of the next labeled field, then
// trims surrounding whitespace and stray separator punctuation.
func cleanValue(v string) string {
	if loc := labelBoundary.FindStringIndex(v); loc != nil && loc[0] > 0 {
		v = v[:loc[0]]
	}
	return strings.Trim(v, valueCutset)
}
