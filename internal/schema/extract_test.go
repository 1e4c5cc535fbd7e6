package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustSchema(t *testing.T, name string, input map[string]any) ToolSchema {
	t.Helper()
	ts, err := New(name, "", input, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	return ts
}

func TestExtractParamsOrdering(t *testing.T) {
	ts := mustSchema(t, "search", map[string]any{
		"properties": map[string]any{
			"zeta":    map[string]any{"type": "string"},
			"alpha":   map[string]any{"type": "string"},
			"query":   map[string]any{"type": "string"},
			"path":    map[string]any{"type": "string"},
			"verbose": map[string]any{"type": "boolean"},
		},
		"required": []any{"query", "path"},
	})

	params := ExtractParams(ts)
	var names []string
	for _, p := range params {
		names = append(names, p.Name)
	}

	// Required first, then alphabetical within each group.
	want := []string{"path", "query", "alpha", "verbose", "zeta"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("param order mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractParamsFields(t *testing.T) {
	ts := mustSchema(t, "report", map[string]any{
		"properties": map[string]any{
			"format": map[string]any{
				"type":        "string",
				"description": "Output format",
				"enum":        []any{"markdown", "html"},
				"default":     "markdown",
			},
			"max_lines": map[string]any{"type": "integer"},
		},
	})

	params := ExtractParams(ts)
	if len(params) != 2 {
		t.Fatalf("got %d params, want 2", len(params))
	}

	format := params[0]
	if format.Name != "format" {
		t.Fatalf("params[0] = %q, want format", format.Name)
	}
	if format.Title != "Format" {
		t.Errorf("Title = %q, want Format", format.Title)
	}
	if format.Description != "Output format" {
		t.Errorf("Description = %q", format.Description)
	}
	if !format.HasDefault || format.Default != "markdown" {
		t.Errorf("Default = %v (has=%v), want markdown", format.Default, format.HasDefault)
	}
	if len(format.Enum) != 2 {
		t.Errorf("Enum = %v, want 2 values", format.Enum)
	}

	maxLines := params[1]
	if maxLines.Title != "Max Lines" {
		t.Errorf("Title = %q, want Max Lines", maxLines.Title)
	}
	if maxLines.Type != "integer" || maxLines.TSType != "number" || maxLines.PyType != "int" {
		t.Errorf("type mapping = (%q, %q, %q)", maxLines.Type, maxLines.TSType, maxLines.PyType)
	}
	if maxLines.HasDefault {
		t.Error("max_lines should have no default")
	}
}

func TestExtractParamsSensitiveDetection(t *testing.T) {
	tests := []struct {
		name      string
		sensitive bool
	}{
		{"api_key", true},
		{"password", true},
		{"client_secret", true},
		{"ApiKey", true},
		{"query", false},
		{"monkey_count", true}, // substring match is intentional
		{"path", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := mustSchema(t, "t", map[string]any{
				"properties": map[string]any{
					tc.name: map[string]any{"type": "string"},
				},
			})
			params := ExtractParams(ts)
			if len(params) != 1 {
				t.Fatalf("got %d params, want 1", len(params))
			}
			if params[0].Sensitive != tc.sensitive {
				t.Errorf("Sensitive = %v, want %v", params[0].Sensitive, tc.sensitive)
			}
		})
	}
}

func TestExtractParamsSkipsNonObjectProperties(t *testing.T) {
	ts := mustSchema(t, "t", map[string]any{
		"properties": map[string]any{
			"good": map[string]any{"type": "string"},
			"bad":  "not a schema",
		},
	})
	params := ExtractParams(ts)
	if len(params) != 1 || params[0].Name != "good" {
		t.Errorf("params = %v, want just good", params)
	}
}

func TestExtractParamsEmptySchema(t *testing.T) {
	ts := mustSchema(t, "t", nil)
	if params := ExtractParams(ts); params != nil {
		t.Errorf("params = %v, want nil", params)
	}
}
