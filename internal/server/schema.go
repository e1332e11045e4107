package server

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildCriteriaJSONSchema returns a JSON-Schema (draft 2020-12 subset) for
// the listing request body. Unknown fields are rejected so typos in filter
// names fail loudly instead of silently widening the query.
func BuildCriteriaJSONSchema() map[string]any {
	props := map[string]any{
		"numero_fo":  map[string]any{"type": "string"},
		"numero_orc": map[string]any{"type": "string"},
		"campanha":   map[string]any{"type": "string"},
		"cliente":    map[string]any{"type": "string"},
		"item":       map[string]any{"type": "string"},
		"codigo":     map[string]any{"type": "string"},
		"tab": map[string]any{
			"type": "string",
			"enum": []string{"em_curso", "pendentes", "concluidos"},
		},
		"page": map[string]any{"type": "integer", "minimum": 0.0},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
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
