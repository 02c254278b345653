package review

import (
	"unicode/utf8"

	"github.com/okafor-chidi/catalog-digitizer/constants"
)

// Config holds thresholds and behavior flags for review flagging.
type Config struct {
	MinTextLength    int  // default 50
	RequireAccession bool // flag records whose accession number is empty
}

// DefaultConfig returns the current heuristic: flag when the accession
// number is missing or the transcription runs under 50 characters.
func DefaultConfig() Config {
	return Config{MinTextLength: 50, RequireAccession: true}
}

// Classifier decides whether a record is unreliable enough to need a human.
// This is an explicit heuristic, not a probabilistic model.
type Classifier struct {
	cfg Config
}

func NewClassifier(cfg Config) *Classifier {
	if cfg.MinTextLength <= 0 {
		cfg.MinTextLength = 50
	}
	return &Classifier{cfg: cfg}
}

// NeedsReview flags a record when the accession number — the primary key
// for any downstream cross-referencing — could not be recovered, or when
// the raw transcription is shorter than MinTextLength runes, a cheap proxy
// for OCR confidence since upstream provides no confidence score.
func (c *Classifier) NeedsReview(fields map[constants.FieldName]string, rawText string) bool {
	if c.cfg.RequireAccession && fields[constants.FieldAccessionNumber] == "" {
		return true
	}
	return utf8.RuneCountInString(rawText) < c.cfg.MinTextLength
}
