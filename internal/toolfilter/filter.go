package toolfilter

import (
	"fmt"
	"strings"

	"github.com/thellimist/nodehub/internal/schema"
)

// ParseToolList splits a comma-separated string into a deduplicated,
// trimmed list of tool names. Empty entries are dropped and order is
// preserved (first occurrence wins on duplicates).
func ParseToolList(csv string) []string {
	if csv == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var result []string
	for _, part := range strings.Split(csv, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	return result
}

// Filter applies include or exclude filtering to discovered schemas.
//
// Rules:
//   - include and exclude are mutually exclusive (the flag layer should
//     already prevent this).
//   - Include mode keeps only named schemas, in the include order. A
//     name that matches nothing errors with the available list and a
//     close-match suggestion (Levenshtein <= 3) when one exists.
//   - Exclude mode removes named schemas; removing everything errors.
//   - With both lists empty, all schemas pass through unchanged.
func Filter(schemas []schema.ToolSchema, include, exclude []string) ([]schema.ToolSchema, error) {
	if len(include) > 0 && len(exclude) > 0 {
		return nil, fmt.Errorf("--tools and --exclude-tools cannot be used together")
	}
	if len(include) == 0 && len(exclude) == 0 {
		return schemas, nil
	}

	byName := make(map[string]schema.ToolSchema, len(schemas))
	available := make([]string, 0, len(schemas))
	for _, ts := range schemas {
		byName[ts.Name] = ts
		available = append(available, ts.Name)
	}

	if len(include) > 0 {
		var result []schema.ToolSchema
		for _, name := range include {
			ts, ok := byName[name]
			if !ok {
				msg := fmt.Sprintf("tool '%s' not found on server. Available tools: %s",
					name, strings.Join(available, ", "))
				if suggestion := SuggestTool(name, available); suggestion != "" {
					msg += fmt.Sprintf(" Did you mean '%s'?", suggestion)
				}
				return nil, fmt.Errorf("%s", msg)
			}
			result = append(result, ts)
		}
		return result, nil
	}

	excludeSet := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excludeSet[name] = struct{}{}
	}

	var result []schema.ToolSchema
	for _, ts := range schemas {
		if _, skip := excludeSet[ts.Name]; !skip {
			result = append(result, ts)
		}
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("all tools excluded, nothing to generate")
	}
	return result, nil
}
