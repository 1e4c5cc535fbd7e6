package schema

import (
	"testing"
)

func TestTypeScriptType(t *testing.T) {
	tests := []struct {
		name string
		prop map[string]any
		want string
	}{
		{"string", map[string]any{"type": "string"}, "string"},
		{"number", map[string]any{"type": "number"}, "number"},
		{"integer", map[string]any{"type": "integer"}, "number"},
		{"boolean", map[string]any{"type": "boolean"}, "boolean"},
		{"object", map[string]any{"type": "object"}, "Record<string, any>"},
		{"missing type", map[string]any{}, "any"},
		{"unknown type", map[string]any{"type": "timestamp"}, "any"},
		{
			name: "string array",
			prop: map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			want: "string[]",
		},
		{
			name: "array without items",
			prop: map[string]any{"type": "array"},
			want: "any[]",
		},
		{
			name: "nested array",
			prop: map[string]any{"type": "array", "items": map[string]any{"type": "array", "items": map[string]any{"type": "number"}}},
			want: "number[][]",
		},
		{
			name: "enum literal union",
			prop: map[string]any{"type": "string", "enum": []any{"asc", "desc"}},
			want: "'asc' | 'desc'",
		},
		{
			name: "nullable resolves to first non-null",
			prop: map[string]any{"type": []any{"null", "string"}},
			want: "string",
		},
		{
			name: "all-null type list",
			prop: map[string]any{"type": []any{"null"}},
			want: "any",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TypeScriptType(tc.prop); got != tc.want {
				t.Errorf("TypeScriptType(%v) = %q, want %q", tc.prop, got, tc.want)
			}
		})
	}
}

func TestPythonType(t *testing.T) {
	tests := []struct {
		name string
		prop map[string]any
		want string
	}{
		{"string", map[string]any{"type": "string"}, "str"},
		{"number", map[string]any{"type": "number"}, "float"},
		{"integer", map[string]any{"type": "integer"}, "int"},
		{"boolean", map[string]any{"type": "boolean"}, "bool"},
		{"object", map[string]any{"type": "object"}, "dict[str, Any]"},
		{"missing type", map[string]any{}, "Any"},
		{"unknown type", map[string]any{"type": "duration"}, "Any"},
		{
			name: "integer array",
			prop: map[string]any{"type": "array", "items": map[string]any{"type": "integer"}},
			want: "list[int]",
		},
		{
			name: "array without items",
			prop: map[string]any{"type": "array"},
			want: "list[Any]",
		},
		{
			name: "nullable resolves to first non-null",
			prop: map[string]any{"type": []any{"null", "integer"}},
			want: "int",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PythonType(tc.prop); got != tc.want {
				t.Errorf("PythonType(%v) = %q, want %q", tc.prop, got, tc.want)
			}
		})
	}
}
