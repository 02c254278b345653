package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/okafor-chidi/catalog-digitizer/constants"
)

var reMultiSpace = regexp.MustCompile(`\s{2,}`)

// Collapse squeezes any run of 2+ whitespace characters into a single space
// and trims the ends. Empty input passes through unchanged: no value is not
// an error.
func Collapse(s string) string {
	if s == "" {
		return s
	}
	s = reMultiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// TitleCase uppercases the first letter of each whitespace-delimited word
// and lowercases the rest. Display convention for object names; lossy, the
// original casing is not recoverable.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// Field normalizes one extracted value according to its field's convention:
// whitespace collapse for everything, plus title casing for the object name.
// All other fields keep their original casing.
func Field(name constants.FieldName, value string) string {
	v := Collapse(value)
	if name == constants.FieldObjectName {
		v = TitleCase(v)
	}
	return v
}
