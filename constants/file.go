package constants

import "strings"

// AllowedExtensions holds the default allowed file extensions for
// transcription ingestion. Upstream OCR emits plain-text pages; JSON
// manifests go through the manifest ingester instead of the directory walk.
var AllowedExtensions = map[string]struct{}{
	"txt": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
