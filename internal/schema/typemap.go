package schema

import "fmt"

// The two type mappers translate a JSON Schema property into the type
// vocabulary of each generated artifact language. Both are total: an
// absent, unrecognized, or structurally odd "type" value falls back to
// the catch-all type instead of failing, so generation never aborts on
// an exotic schema.

// TypeScriptType maps a property schema to a TypeScript type expression.
//
//	string            → string (or a 'a' | 'b' literal union when enum is present)
//	number, integer   → number
//	boolean           → boolean
//	array             → T[] with the recursively mapped items type
//	object            → Record<string, any>
//	anything else     → any
func TypeScriptType(prop map[string]any) string {
	switch typeTag(prop, "any") {
	case "string":
		if enum, ok := prop["enum"].([]any); ok && len(enum) > 0 {
			union := ""
			for i, v := range enum {
				if i > 0 {
					union += " | "
				}
				union += fmt.Sprintf("'%v'", v)
			}
			return union
		}
		return "string"
	case "number", "integer":
		return "number"
	case "boolean":
		return "boolean"
	case "array":
		return arrayItems(prop, TypeScriptType) + "[]"
	case "object":
		return "Record<string, any>"
	default:
		return "any"
	}
}

// PythonType maps a property schema to a Python type hint:
// str/float/int/bool, list[T] for arrays, dict[str, Any] for objects,
// and Any for everything else.
func PythonType(prop map[string]any) string {
	switch typeTag(prop, "Any") {
	case "string":
		return "str"
	case "number":
		return "float"
	case "integer":
		return "int"
	case "boolean":
		return "bool"
	case "array":
		return "list[" + arrayItems(prop, PythonType) + "]"
	case "object":
		return "dict[str, Any]"
	default:
		return "Any"
	}
}

// typeTag extracts the declared type from a property schema. Nullable
// declarations like ["string", "null"] resolve to the first non-null
// entry; an absent or unusable declaration yields fallback.
func typeTag(prop map[string]any, fallback string) string {
	switch t := prop["type"].(type) {
	case string:
		return t
	case []any:
		for _, v := range t {
			if s, ok := v.(string); ok && s != "null" {
				return s
			}
		}
	}
	return fallback
}

// arrayItems maps the items schema of an array property with the given
// mapper, treating a missing items schema as open-typed.
func arrayItems(prop map[string]any, mapper func(map[string]any) string) string {
	items, ok := prop["items"].(map[string]any)
	if !ok {
		items = map[string]any{}
	}
	return mapper(items)
}
