package codegen

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/thellimist/nodehub/internal/nameutil"
	"github.com/thellimist/nodehub/internal/schema"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var bundleTemplates = template.Must(
	template.New("bundle").Funcs(template.FuncMap{
		"pyLit":        pyLiteral,
		"pyDefault":    pyDefault,
		"pyInputs":     pyInputsDict,
		"pyToolParams": pyToolParamsDict,
		"tsLit":        tsLiteral,
		"tsDefault":    tsDefault,
		"enumOptions":  enumOptions,
		"enumFallback": enumFallback,
		"lower":        strings.ToLower,
	}).ParseFS(templateFS, "templates/*.tmpl"),
)

// render executes one embedded template against the node context.
func render(name string, ctx NodeContext) ([]byte, error) {
	var buf bytes.Buffer
	if err := bundleTemplates.ExecuteTemplate(&buf, name, ctx); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// pyInputsDict renders the inputs mapping reported by a failed guard:
// every extracted local keyed by its parameter name.
func pyInputsDict(params []schema.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = pyLiteral(p.Name) + ": " + p.Name
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// pyToolParamsDict renders the tool parameter mapping: extracted locals
// for visible params followed by literal values for hidden pins.
func pyToolParamsDict(params []schema.Param, pinned []PinnedParam) string {
	parts := make([]string, 0, len(params)+len(pinned))
	for _, p := range params {
		parts = append(parts, pyLiteral(p.Name)+": "+p.Name)
	}
	for _, p := range pinned {
		parts = append(parts, pyLiteral(p.Name)+": "+pyLiteral(p.Value))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// enumOptions renders the Select options array for an enum parameter.
func enumOptions(p schema.Param) string {
	parts := make([]string, len(p.Enum))
	for i, v := range p.Enum {
		value := fmt.Sprintf("%v", v)
		parts[i] = fmt.Sprintf("{ value: %s, label: %s }",
			tsLiteral(value), tsLiteral(nameutil.TitleCase(value)))
	}
	return strings.Join(parts, ", ")
}
