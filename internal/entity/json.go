package entity

import (
	"encoding/json"

	"github.com/okafor-chidi/catalog-digitizer/constants"
)

// recordJSON is the wire shape of a CatalogRecord: the eight catalog fields
// are flattened to top-level keys so consumers see one flat object per page.
// Key order here fixes the serialized key order.
type recordJSON struct {
	SourceFile      string  `json:"source_file"`
	Page            int     `json:"page"`
	RawText         string  `json:"raw_text"`
	AccessionNumber string  `json:"accession_number"`
	ObjectName      string  `json:"object_name"`
	Provenance      string  `json:"provenance"`
	SiteLocation    string  `json:"site_location"`
	Materials       string  `json:"materials"`
	Dimensions      string  `json:"dimensions"`
	Date            string  `json:"date"`
	Notes           string  `json:"notes"`
	NeedsReview     bool    `json:"needs_review"`
	Year            *string `json:"year,omitempty"`
}

// MarshalJSON flattens the field map into top-level keys. String values are
// emitted exactly as stored; nothing is truncated or re-encoded.
func (r CatalogRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		SourceFile:      r.SourceFile,
		Page:            r.Page,
		RawText:         r.RawText,
		AccessionNumber: r.Fields[constants.FieldAccessionNumber],
		ObjectName:      r.Fields[constants.FieldObjectName],
		Provenance:      r.Fields[constants.FieldProvenance],
		SiteLocation:    r.Fields[constants.FieldSiteLocation],
		Materials:       r.Fields[constants.FieldMaterials],
		Dimensions:      r.Fields[constants.FieldDimensions],
		Date:            r.Fields[constants.FieldDate],
		Notes:           r.Fields[constants.FieldNotes],
		NeedsReview:     r.NeedsReview,
		Year:            r.Year,
	})
}

// UnmarshalJSON rebuilds the field map with every known key present, so a
// deserialized record satisfies the same total-coverage invariant as an
// assembled one.
func (r *CatalogRecord) UnmarshalJSON(data []byte) error {
	var w recordJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.SourceFile = w.SourceFile
	r.Page = w.Page
	r.RawText = w.RawText
	r.NeedsReview = w.NeedsReview
	r.Year = w.Year
	r.Fields = map[constants.FieldName]string{
		constants.FieldAccessionNumber: w.AccessionNumber,
		constants.FieldObjectName:      w.ObjectName,
		constants.FieldProvenance:      w.Provenance,
		constants.FieldSiteLocation:    w.SiteLocation,
		constants.FieldMaterials:       w.Materials,
		constants.FieldDimensions:      w.Dimensions,
		constants.FieldDate:            w.Date,
		constants.FieldNotes:           w.Notes,
	}
	return nil
}
