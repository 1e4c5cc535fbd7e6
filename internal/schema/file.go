package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "embed"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// The flat schema file is the offline form of one extraction run: either
// a bare JSON array of tool records, or an object with a "tools" array.
// Records carry both the original and the derived fields so the file is
// inspectable, but only the original fields are authoritative on load.

//go:embed toolfile_schema.json
var toolFileSchemaJSON []byte

var (
	toolFileSchemaOnce sync.Once
	toolFileSchema     *jsonschema.Schema
	toolFileSchemaErr  error
)

// compiledToolFileSchema compiles the embedded structural schema once.
func compiledToolFileSchema() (*jsonschema.Schema, error) {
	toolFileSchemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal(toolFileSchemaJSON, &doc); err != nil {
			toolFileSchemaErr = fmt.Errorf("unmarshal tool file schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("toolfile.json", doc); err != nil {
			toolFileSchemaErr = fmt.Errorf("add tool file schema resource: %w", err)
			return
		}
		toolFileSchema, toolFileSchemaErr = c.Compile("toolfile.json")
	})
	return toolFileSchema, toolFileSchemaErr
}

// Load reads tool schemas from a flat schema file. The document is
// structurally validated before decoding; a record without a non-empty
// string name surfaces as a SchemaError.
func Load(path string) ([]ToolSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a flat schema document from memory. Used by Load and by
// watch-driven regeneration, which re-reads the file on every change.
func Parse(data []byte) ([]ToolSchema, error) {
	compiled, err := compiledToolFileSchema()
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &SchemaError{Detail: "schema file is not valid JSON", Err: err}
	}
	if err := compiled.Validate(doc); err != nil {
		return nil, &SchemaError{Detail: "schema file failed validation", Err: err}
	}

	// Validation guarantees one of the two shapes.
	var records json.RawMessage
	if _, ok := doc.([]any); ok {
		records = data
	} else {
		var wrapper struct {
			Tools json.RawMessage `json:"tools"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, &SchemaError{Detail: "schema file has no tools array", Err: err}
		}
		records = wrapper.Tools
	}

	var schemas []ToolSchema
	if err := json.Unmarshal(records, &schemas); err != nil {
		return nil, err
	}
	return schemas, nil
}

// Save writes the tool schemas to path as a pretty-printed flat JSON
// array, creating parent directories as needed. An existing file at
// path is overwritten.
func Save(path string, schemas []ToolSchema) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create schema file dir: %w", err)
		}
	}

	if schemas == nil {
		schemas = []ToolSchema{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(schemas); err != nil {
		return fmt.Errorf("marshal schemas: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write schema file: %w", err)
	}
	return nil
}
