package pipeline

import (
	"testing"

	"github.com/okafor-chidi/catalog-digitizer/constants"
	"github.com/okafor-chidi/catalog-digitizer/internal/entity"
)

func TestAssembleCatalogCard(t *testing.T) {
	a := NewAssembler(nil, nil, nil)
	page := entity.RawPage{
		SourceFile: "box3/card-117.tif",
		Page:       1,
		RawText:    "Accession No: 1987.22.4 Object Name: ceremonial mask Materials: Wood, pigment",
	}

	rec := a.Assemble(page)

	if rec.SourceFile != page.SourceFile || rec.Page != page.Page || rec.RawText != page.RawText {
		t.Errorf("page identity not carried through: %+v", rec)
	}
	if got := rec.Field(constants.FieldAccessionNumber); got != "1987.22.4" {
		t.Errorf("accession_number = %q", got)
	}
	if got := rec.Field(constants.FieldObjectName); got != "Ceremonial Mask" {
		t.Errorf("object_name = %q, want title-cased %q", got, "Ceremonial Mask")
	}
	if rec.NeedsReview {
		t.Errorf("needs_review = true for a record with an accession number and %d chars", len(page.RawText))
	}
	for _, f := range constants.FieldNames {
		if _, ok := rec.Fields[f]; !ok {
			t.Errorf("field %s missing from record", f)
		}
	}
}

func TestAssembleEmptyPage(t *testing.T) {
	a := NewAssembler(nil, nil, nil)
	rec := a.Assemble(entity.RawPage{SourceFile: "blank.tif", Page: 1, RawText: ""})

	for _, f := range constants.FieldNames {
		if rec.Fields[f] != "" {
			t.Errorf("field %s = %q, want empty", f, rec.Fields[f])
		}
	}
	if !rec.NeedsReview {
		t.Errorf("empty page not flagged for review")
	}
	if rec.Year != nil {
		t.Errorf("year = %q, want absent", *rec.Year)
	}
}

func TestYearFrom(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string // "" means absent
	}{
		{"year in prose", "1893, acquired later", "1893"},
		{"no four-digit run", "circa 19th century", ""},
		{"empty date", "", ""},
		{"longer digit run skipped", "catalogued 190210, then 1905", "1905"},
		{"year at end", "circa 1922", "1922"},
		{"short runs only", "19th c., lot 22", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := yearFrom(tt.date)
			switch {
			case tt.want == "" && got != nil:
				t.Errorf("yearFrom(%q) = %q, want absent", tt.date, *got)
			case tt.want != "" && got == nil:
				t.Errorf("yearFrom(%q) = absent, want %q", tt.date, tt.want)
			case tt.want != "" && *got != tt.want:
				t.Errorf("yearFrom(%q) = %q, want %q", tt.date, *got, tt.want)
			}
		})
	}
}

func TestAssembleYearFromDateField(t *testing.T) {
	a := NewAssembler(nil, nil, nil)

	rec := a.Assemble(entity.RawPage{
		SourceFile: "card.tif",
		Page:       1,
		RawText:    "Accession No: 53.2 Dated 1893, acquired later from the estate sale",
	})
	if rec.Year == nil || *rec.Year != "1893" {
		t.Fatalf("year = %v, want 1893 (date field was %q)", rec.Year, rec.Field(constants.FieldDate))
	}

	rec = a.Assemble(entity.RawPage{
		SourceFile: "card.tif",
		Page:       2,
		RawText:    "Accession No: 53.3 Date: circa 19th century, probably Benin workshop",
	})
	if rec.Year != nil {
		t.Errorf("year = %q, want absent for %q", *rec.Year, rec.Field(constants.FieldDate))
	}
}
