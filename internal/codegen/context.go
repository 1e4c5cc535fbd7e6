package codegen

import (
	"strings"

	"github.com/thellimist/nodehub/internal/nameutil"
	"github.com/thellimist/nodehub/internal/pinning"
	"github.com/thellimist/nodehub/internal/schema"
)

// NodeContext holds everything the templates need to render one bundle.
// It is a pure function of (schema, server URL, pins), so the same
// inputs always render the same bytes.
type NodeContext struct {
	ToolName       string
	NodeType       string
	ClassName      string
	ComponentName  string // ClassName without the Node suffix
	InterfaceName  string // ComponentName + "NodeData"
	DefaultVarName string // default.ts export name, node type minus dashes
	Title          string
	Description    string // empty when the tool has none
	ManifestDesc   string // Description with the generated fallback applied
	ShortDesc      string // Description or the terse "MCP Tool" fallback
	Icon           string
	ServerURL      string // may be empty; supplied at configuration time

	// Params are the parameters visible to the host: the schema's
	// parameters minus hidden-mode pins, required first then
	// alphabetical.
	Params []schema.Param

	// Pinned are hidden-mode pins the backend passes as literals,
	// sorted by name. Empty unless pinning runs in hidden mode.
	Pinned []PinnedParam
}

// PinnedParam is one hidden-mode pin: the backend emits Value as a
// literal in the tool parameter mapping, and the frontend never shows
// the field.
type PinnedParam struct {
	Name  string
	Value any
}

// BuildContext assembles the template context for one tool. pins may be
// nil. serverURL may be empty; generated code stays valid and requires
// the endpoint at configuration time.
func BuildContext(ts schema.ToolSchema, serverURL string, pins *pinning.Config) NodeContext {
	component := strings.TrimSuffix(ts.ClassName, "Node")

	ctx := NodeContext{
		ToolName:       ts.Name,
		NodeType:       ts.NodeType,
		ClassName:      ts.ClassName,
		ComponentName:  component,
		InterfaceName:  component + "NodeData",
		DefaultVarName: strings.ReplaceAll(ts.NodeType, "-", "") + "Default",
		Title:          nameutil.TitleCase(ts.Name),
		Description:    ts.Description,
		ManifestDesc:   ts.Description,
		Icon:           IconFor(ts.Name),
		ServerURL:      serverURL,
		Params:         schema.ExtractParams(ts),
	}
	if ctx.ManifestDesc == "" {
		ctx.ManifestDesc = "MCP tool: " + ts.Name
	}
	ctx.ShortDesc = ts.Description
	if ctx.ShortDesc == "" {
		ctx.ShortDesc = "MCP Tool"
	}

	applyPins(&ctx, pins)
	return ctx
}

// applyPins folds the pinning config into the context.
//
// Default mode replaces parameter defaults with the pinned values; pins
// that name no schema parameter are ignored. Hidden mode removes pinned
// parameters from the visible set and records them (including pins with
// no schema counterpart) for literal injection in the backend.
func applyPins(ctx *NodeContext, pins *pinning.Config) {
	if pins == nil {
		return
	}
	merged := pins.Merge(ctx.ToolName)
	if len(merged) == 0 {
		return
	}

	if pins.Mode == pinning.ModeDefault {
		for i := range ctx.Params {
			if v, ok := merged[ctx.Params[i].Name]; ok {
				ctx.Params[i].Default = v
				ctx.Params[i].HasDefault = true
			}
		}
		return
	}

	// Hidden mode.
	visible := ctx.Params[:0]
	for _, p := range ctx.Params {
		if _, pinned := merged[p.Name]; !pinned {
			visible = append(visible, p)
		}
	}
	ctx.Params = visible

	ctx.Pinned = make([]PinnedParam, 0, len(merged))
	for _, name := range pins.ParamNames(ctx.ToolName) {
		ctx.Pinned = append(ctx.Pinned, PinnedParam{Name: name, Value: merged[name]})
	}
}
