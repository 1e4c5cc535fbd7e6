package schema

import (
	"encoding/json"

	"github.com/thellimist/nodehub/internal/nameutil"
)

// ToolSchema is the normalized form of one discovered MCP tool. The
// derived identifier fields are computed once from Name at construction
// and never change afterward; equal names always yield equal identifiers,
// which is what makes regeneration idempotent and lets a saved schema
// file reference previously generated bundles.
type ToolSchema struct {
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	InputSchema  map[string]any `json:"input_schema,omitempty"`
	OutputSchema map[string]any `json:"output_schema,omitempty"`
	Annotations  map[string]any `json:"annotations,omitempty"`

	// Derived. Serialized for inspectability but always recomputed from
	// Name on load.
	NodeType  string `json:"node_type"`
	ClassName string `json:"class_name"`
}

// New builds a ToolSchema with its derived identifier fields populated.
// name must be non-empty; everything else is optional.
func New(name, description string, input, output, annotations map[string]any) (ToolSchema, error) {
	if name == "" {
		return ToolSchema{}, &SchemaError{Detail: "tool record has no name"}
	}
	if input == nil {
		input = map[string]any{}
	}
	return ToolSchema{
		Name:         name,
		Description:  description,
		InputSchema:  input,
		OutputSchema: output,
		Annotations:  annotations,
		NodeType:     nameutil.NodeType(name),
		ClassName:    nameutil.ClassName(name),
	}, nil
}

// UnmarshalJSON decodes a flat tool record. Persisted identifier fields
// are ignored and recomputed from the name, so a hand-edited file cannot
// desynchronize a record from its bundle directory.
func (ts *ToolSchema) UnmarshalJSON(data []byte) error {
	type record ToolSchema
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return &SchemaError{Detail: "malformed tool record", Err: err}
	}
	if rec.Name == "" {
		return &SchemaError{Detail: "tool record has no name"}
	}
	if rec.InputSchema == nil {
		rec.InputSchema = map[string]any{}
	}
	rec.NodeType = nameutil.NodeType(rec.Name)
	rec.ClassName = nameutil.ClassName(rec.Name)
	*ts = ToolSchema(rec)
	return nil
}

// Properties returns the parameter definitions from the input schema,
// or an empty map when the schema declares none.
func (ts ToolSchema) Properties() map[string]any {
	props, ok := ts.InputSchema["properties"].(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return props
}

// RequiredFields returns the names the input schema marks required, in
// declaration order.
func (ts ToolSchema) RequiredFields() []string {
	raw, ok := ts.InputSchema["required"].([]any)
	if !ok {
		return nil
	}
	var required []string
	for _, v := range raw {
		if s, ok := v.(string); ok {
			required = append(required, s)
		}
	}
	return required
}
