package entity

// RawPage is one OCR-transcribed page as delivered by the upstream
// recognition stage. Immutable once created; one per physical page.
type RawPage struct {
	SourceFile string `json:"source_file"`
	Page       int    `json:"page"`
	RawText    string `json:"raw_text"`
}
