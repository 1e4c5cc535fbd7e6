package codegen

import (
	"bytes"
	"encoding/json"
)

// Manifest is the bundle descriptor written as manifest.json. Field
// order here is the key order in the file.
type Manifest struct {
	NodeType    string        `json:"node_type"`
	Version     string        `json:"version"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Author      string        `json:"author"`
	Icon        string        `json:"icon"`
	Category    string        `json:"category"`
	Backend     BackendSpec   `json:"backend"`
	Frontend    FrontendSpec  `json:"frontend"`
	Inputs      orderedObject `json:"inputs"`
	Outputs     orderedObject `json:"outputs"`
}

// BackendSpec declares the backend entry point and its runtime deps.
type BackendSpec struct {
	Entry        string   `json:"entry"`
	Dependencies []string `json:"dependencies"`
}

// FrontendSpec declares the frontend entry point.
type FrontendSpec struct {
	Entry string `json:"entry"`
}

const (
	manifestVersion  = "1"
	manifestAuthor   = "MCP Node Generator"
	manifestCategory = "mcp-tools"
)

// orderedObject marshals as a JSON object whose keys appear in slice
// order. Go maps marshal with sorted keys, which would bury the
// synthetic server-endpoint input in the middle of the parameters;
// this keeps the declaration order the host UI renders.
type orderedObject []objectField

type objectField struct {
	Key   string
	Value any
}

func (o orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// buildManifest assembles the manifest descriptor for one bundle.
func buildManifest(ctx NodeContext) Manifest {
	return Manifest{
		NodeType:    ctx.NodeType,
		Version:     manifestVersion,
		Name:        ctx.Title,
		Description: ctx.ManifestDesc,
		Author:      manifestAuthor,
		Icon:        ctx.Icon,
		Category:    manifestCategory,
		Backend: BackendSpec{
			Entry:        "node.py",
			Dependencies: []string{"httpx>=0.27.0"},
		},
		Frontend: FrontendSpec{Entry: "index.ts"},
		Inputs:   manifestInputs(ctx),
		Outputs:  manifestOutputs(),
	}
}

// manifestInputs declares the synthetic required server-endpoint input
// followed by one entry per visible parameter.
func manifestInputs(ctx NodeContext) orderedObject {
	serverInput := orderedObject{
		{Key: "type", Value: "string"},
		{Key: "title", Value: "MCP Server URL"},
		{Key: "description", Value: "MCP server endpoint (SSE or HTTP)"},
		{Key: "required", Value: true},
	}
	if ctx.ServerURL != "" {
		serverInput = append(serverInput, objectField{Key: "default", Value: ctx.ServerURL})
	}

	inputs := orderedObject{{Key: "mcp_server_url", Value: serverInput}}

	for _, p := range ctx.Params {
		def := orderedObject{
			{Key: "type", Value: p.Type},
			{Key: "title", Value: p.Title},
		}
		if p.Description != "" {
			def = append(def, objectField{Key: "description", Value: p.Description})
		}
		if p.Required {
			def = append(def, objectField{Key: "required", Value: true})
		}
		if p.HasDefault {
			def = append(def, objectField{Key: "default", Value: p.Default})
		}
		if p.Enum != nil {
			def = append(def, objectField{Key: "enum", Value: p.Enum})
		}
		inputs = append(inputs, objectField{Key: p.Name, Value: def})
	}

	return inputs
}

// manifestOutputs declares the three fixed outputs every bundle emits.
func manifestOutputs() orderedObject {
	return orderedObject{
		{Key: "text", Value: orderedObject{
			{Key: "type", Value: "string"},
			{Key: "description", Value: "Text content from tool result"},
		}},
		{Key: "result", Value: orderedObject{
			{Key: "type", Value: "object"},
			{Key: "description", Value: "Full tool result object"},
		}},
		{Key: "is_error", Value: orderedObject{
			{Key: "type", Value: "boolean"},
			{Key: "description", Value: "Whether the tool returned an error"},
		}},
	}
}

// renderManifest serializes the manifest pretty-printed for diffable
// regeneration.
func renderManifest(ctx NodeContext) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(buildManifest(ctx)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
