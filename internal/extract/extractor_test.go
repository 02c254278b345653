package extract

import (
	"reflect"
	"testing"

	"github.com/okafor-chidi/catalog-digitizer/constants"
)

func TestExtractCatalogCard(t *testing.T) {
	e := NewExtractor(nil)
	text := "Accession No: 1987.22.4 Object Name: Ceremonial Mask Materials: Wood, pigment"

	got := e.Extract(text)

	want := map[constants.FieldName]string{
		constants.FieldAccessionNumber: "1987.22.4",
		constants.FieldObjectName:      "Ceremonial Mask",
		constants.FieldMaterials:       "Wood, pigment",
	}
	for field, value := range want {
		if got[field] != value {
			t.Errorf("%s = %q, want %q", field, got[field], value)
		}
	}
	for _, field := range constants.FieldNames {
		if _, ok := want[field]; ok {
			continue
		}
		if got[field] != "" {
			t.Errorf("%s = %q, want empty", field, got[field])
		}
	}
}

func TestExtractLabelSynonyms(t *testing.T) {
	e := NewExtractor(nil)

	tests := []struct {
		name  string
		text  string
		field constants.FieldName
		want  string
	}{
		{"acc no abbreviation", "acc. no. 53.2; bronze", constants.FieldAccessionNumber, "53.2"},
		{"catalog number", "Catalog No: 1901.4.17", constants.FieldAccessionNumber, "1901.4.17"},
		{"whitespace separator", "Accession 1987.22.4", constants.FieldAccessionNumber, "1987.22.4"},
		{"trailing letter designation", "Accession No: 1987.22a, wood", constants.FieldAccessionNumber, "1987.22a"},
		{"dated prose", "Dated 1893, acquired later", constants.FieldDate, "1893, acquired later"},
		{"dimensions synonym", "Size: 14 x 9 cm", constants.FieldDimensions, "14 x 9 cm"},
		{"provenance", "Provenance: gift of A. Whitcombe estate, 1922", constants.FieldProvenance, "gift of A. Whitcombe estate, 1922"},
		{"site location slash", "Site/Location: Thebes, west bank", constants.FieldSiteLocation, "Thebes, west bank"},
		{"no match inside word", "updated 2020 by registrar", constants.FieldDate, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.text)
			if got[tt.field] != tt.want {
				t.Errorf("Extract(%q)[%s] = %q, want %q", tt.text, tt.field, got[tt.field], tt.want)
			}
		})
	}
}

func TestExtractStopsAtNextLabel(t *testing.T) {
	e := NewExtractor(nil)
	text := "Object Name: carved ivory comb Notes: tooth missing Dimensions: 11 cm"

	got := e.Extract(text)
	if got[constants.FieldObjectName] != "carved ivory comb" {
		t.Errorf("object_name = %q, want %q", got[constants.FieldObjectName], "carved ivory comb")
	}
	if got[constants.FieldNotes] != "tooth missing" {
		t.Errorf("notes = %q, want %q", got[constants.FieldNotes], "tooth missing")
	}
}

func TestExtractEmptyInput(t *testing.T) {
	e := NewExtractor(nil)

	for _, text := range []string{"", "   \n\t  "} {
		got := e.Extract(text)
		if len(got) != len(constants.FieldNames) {
			t.Fatalf("Extract(%q) returned %d keys, want %d", text, len(got), len(constants.FieldNames))
		}
		for field, value := range got {
			if value != "" {
				t.Errorf("Extract(%q)[%s] = %q, want empty", text, field, value)
			}
		}
	}
}

func TestExtractDeterministic(t *testing.T) {
	e := NewExtractor(nil)
	text := "ACCESSION no: A-44/7\nobject name: small BRONZE bell\nnotes: cracked rim."

	first := e.Extract(text)
	second := e.Extract(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction differs:\nfirst:  %v\nsecond: %v", first, second)
	}
}

func TestRegistryIsTotal(t *testing.T) {
	reg := NewRegistry()
	for _, field := range constants.FieldNames {
		rule := reg.RuleFor(field)
		if rule.Pattern == nil {
			t.Errorf("RuleFor(%s) has nil pattern", field)
		}
		if rule.Field != field {
			t.Errorf("RuleFor(%s).Field = %s", field, rule.Field)
		}
	}
}
