package codegen

import (
	"sort"
	"strconv"
	"strings"

	"github.com/thellimist/nodehub/internal/schema"
)

// Literal rendering for the two target languages. JSON-decoded values
// only ever take the shapes matched here, so both renderers are total
// over anything a schema default or pin can hold.

// pyLiteral renders a value as a Python literal.
func pyLiteral(v any) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case string:
		return "'" + pyEscape(val) + "'"
	case bool:
		if val {
			return "True"
		}
		return "False"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = pyLiteral(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = pyLiteral(k) + ": " + pyLiteral(val[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "None"
	}
}

func pyEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// pyDefault renders the get_input default for a parameter: its declared
// default when present, the empty string otherwise.
func pyDefault(p schema.Param) string {
	if !p.HasDefault {
		return "''"
	}
	return pyLiteral(p.Default)
}

// tsLiteral renders a value as a TypeScript literal. Strings keep the
// single-quote style of the surrounding generated code; composites fall
// back to JSON, which is valid TS.
func tsLiteral(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return "'" + tsEscape(val) + "'"
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = tsLiteral(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = tsLiteral(k) + ": " + tsLiteral(val[k])
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	default:
		return "null"
	}
}

func tsEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// tsDefault renders the default.ts entry for a parameter: the explicit
// default when present, false for booleans, the empty string for
// everything else.
func tsDefault(p schema.Param) string {
	if p.HasDefault {
		return tsLiteral(p.Default)
	}
	if p.Type == "boolean" {
		return "false"
	}
	return "''"
}

// enumFallback picks the panel Select fallback value: the declared
// default when present, else the first enum entry.
func enumFallback(p schema.Param) string {
	if p.HasDefault {
		if s, ok := p.Default.(string); ok {
			return s
		}
	}
	if len(p.Enum) > 0 {
		if s, ok := p.Enum[0].(string); ok {
			return s
		}
	}
	return ""
}
