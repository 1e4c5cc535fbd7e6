package codegen

import "strings"

// iconTable maps tool-name keywords to display glyphs. Order matters:
// the first keyword found in the name wins, so "read_file" gets the
// file glyph, not the read glyph.
var iconTable = []struct {
	keyword string
	glyph   string
}{
	{"file", "📁"},
	{"read", "📖"},
	{"write", "📝"},
	{"search", "🔍"},
	{"list", "📋"},
	{"delete", "🗑️"},
	{"create", "➕"},
	{"edit", "✏️"},
	{"get", "📥"},
	{"send", "📤"},
	{"api", "🔌"},
	{"http", "🌐"},
	{"database", "🗃️"},
	{"query", "❓"},
	{"execute", "▶️"},
	{"run", "🏃"},
}

const defaultIcon = "🔧"

// IconFor picks a glyph for a tool by keyword match against its name.
func IconFor(toolName string) string {
	name := strings.ToLower(toolName)
	for _, entry := range iconTable {
		if strings.Contains(name, entry.keyword) {
			return entry.glyph
		}
	}
	return defaultIcon
}
