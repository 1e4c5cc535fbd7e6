package nameutil

import (
	"strings"
	"unicode"
)

// Affixes applied to derived identifiers. Every generated node lives in
// the MCP namespace so bundles from different generators cannot collide
// with built-in node types.
const (
	nodeTypePrefix  = "mcp-"
	classNamePrefix = "MCP"
	classNameSuffix = "Node"
)

// NodeType derives the node-type identifier for a tool name: the slug
// form prefixed with the MCP namespace tag. Deterministic: equal names
// always produce equal identifiers, across runs and processes.
//
//	NodeType("list_directory") == "mcp-list-directory"
//
// An all-symbol name degenerates to just the prefix (trailing dash
// trimmed from the empty slug is kept as part of the tag).
func NodeType(name string) string {
	return nodeTypePrefix + Slugify(name)
}

// ClassName derives the generated backend class name for a tool name:
// the name split on underscore/dash/whitespace runs, each segment
// capitalized, concatenated, and wrapped in the MCP prefix and Node
// role suffix.
//
//	ClassName("list_directory") == "MCPListDirectoryNode"
func ClassName(name string) string {
	var b strings.Builder
	b.WriteString(classNamePrefix)
	for _, word := range splitWords(name) {
		b.WriteString(capitalize(word))
	}
	b.WriteString(classNameSuffix)
	return b.String()
}

// TitleCase formats a snake_case or kebab-case name for display:
// separators become spaces and each word is capitalized.
//
//	TitleCase("mcp_server_url") == "Mcp Server Url"
func TitleCase(name string) string {
	words := splitWords(name)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// splitWords splits a name on runs of underscores, dashes, and
// whitespace, dropping empty segments.
func splitWords(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
}

// capitalize uppercases the first rune and lowercases the rest,
// mirroring how generated titles read in the host UI.
func capitalize(word string) string {
	if word == "" {
		return ""
	}
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
