package schema

import (
	"sort"
	"strings"

	"github.com/thellimist/nodehub/internal/nameutil"
)

// Param is the typed template record for one tool parameter. The
// generator renders every artifact from these records rather than from
// the raw schema maps, so the synthesis can be tested on structure
// instead of literal text.
type Param struct {
	Name        string // Original JSON property key (e.g. "api_key")
	Title       string // Display title ("Api Key")
	Description string // From the schema description field
	Type        string // Normalized schema type tag for the manifest
	TSType      string // Mapped TypeScript type expression
	PyType      string // Mapped Python type hint
	Required    bool   // True when listed in the schema's required array
	Default     any    // Declared default, nil unless HasDefault
	HasDefault  bool   // Distinguishes an explicit null default from none
	Enum        []any  // Enum values, nil when not an enum
	Sensitive   bool   // Name suggests a credential; frontend masks input
}

// Keywords that mark a parameter as credential-like. Matched
// case-insensitively as substrings of the parameter name.
var sensitiveKeywords = []string{"password", "key", "secret"}

// ExtractParams flattens a tool schema's properties into Param records.
//
// Sort order: required parameters first, then alphabetical by name
// within each group. JSON object order is not observable through Go
// maps, so this fixed order is what makes regeneration byte-identical.
//
// Properties whose value is not an object are skipped.
func ExtractParams(ts ToolSchema) []Param {
	properties := ts.Properties()
	if len(properties) == 0 {
		return nil
	}

	requiredSet := make(map[string]bool)
	for _, name := range ts.RequiredFields() {
		requiredSet[name] = true
	}

	params := make([]Param, 0, len(properties))
	for name, raw := range properties {
		prop, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		p := Param{
			Name:      name,
			Title:     nameutil.TitleCase(name),
			Type:      typeTag(prop, "string"),
			TSType:    TypeScriptType(prop),
			PyType:    PythonType(prop),
			Required:  requiredSet[name],
			Sensitive: isSensitive(name),
		}

		if desc, ok := prop["description"].(string); ok {
			p.Description = desc
		}
		if def, ok := prop["default"]; ok {
			p.Default = def
			p.HasDefault = true
		}
		if enum, ok := prop["enum"].([]any); ok {
			p.Enum = enum
		}

		params = append(params, p)
	}

	sort.Slice(params, func(i, j int) bool {
		if params[i].Required != params[j].Required {
			return params[i].Required
		}
		return params[i].Name < params[j].Name
	})

	return params
}

func isSensitive(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range sensitiveKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
