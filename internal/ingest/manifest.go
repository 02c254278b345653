package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/okafor-chidi/catalog-digitizer/internal/common"
	"github.com/okafor-chidi/catalog-digitizer/internal/entity"
)

// buildManifestSchema returns the JSON-Schema (draft 2020-12 subset) for a
// page manifest: an array of raw page objects as emitted by the upstream
// OCR stage. The schema is the fail-fast edge of the upstream contract:
// a missing source_file or a page below 1 is rejected here, before any
// record assembly, while raw_text may be absent or null.
func buildManifestSchema() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"source_file": map[string]any{"type": "string", "minLength": 1},
				"page":        map[string]any{"type": "integer", "minimum": 1},
				"raw_text":    map[string]any{"type": []string{"string", "null"}},
			},
			"required": []string{"source_file", "page"},
		},
	}
}

// validateJSONAgainstSchema validates "data" against "schemaMap".
func validateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("manifest.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("manifest.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// ReadManifest parses a JSON page manifest. A null raw_text decodes to the
// empty string, which downstream treats as "no transcription", not an error.
func ReadManifest(data []byte) ([]entity.RawPage, error) {
	if err := validateJSONAgainstSchema(buildManifestSchema(), data); err != nil {
		return nil, common.ContractViolationf("manifest rejected: %v", err)
	}
	var pages []entity.RawPage
	if err := json.Unmarshal(data, &pages); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return pages, nil
}
