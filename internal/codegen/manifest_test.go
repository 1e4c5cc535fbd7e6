package codegen

import (
	"encoding/json"
	"strings"
	"testing"
)

func searchContext(t *testing.T, serverURL string) NodeContext {
	t.Helper()
	ts := mustSchema(t, "search_query", "Searches the index", map[string]any{
		"properties": map[string]any{
			"query": map[string]any{"type": "string", "description": "Search query"},
			"limit": map[string]any{"type": "integer", "default": float64(10)},
			"order": map[string]any{"type": "string", "enum": []any{"asc", "desc"}},
		},
		"required": []any{"query"},
	})
	return BuildContext(ts, serverURL, nil)
}

func TestRenderManifestFields(t *testing.T) {
	data, err := renderManifest(searchContext(t, "http://localhost:8000/sse"))
	if err != nil {
		t.Fatalf("renderManifest returned error: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}

	if m["node_type"] != "mcp-search-query" {
		t.Errorf("node_type = %v", m["node_type"])
	}
	if m["version"] != "1" {
		t.Errorf("version = %v", m["version"])
	}
	if m["name"] != "Search Query" {
		t.Errorf("name = %v", m["name"])
	}
	if m["author"] != "MCP Node Generator" {
		t.Errorf("author = %v", m["author"])
	}
	if m["category"] != "mcp-tools" {
		t.Errorf("category = %v", m["category"])
	}
	if m["icon"] != "🔍" {
		t.Errorf("icon = %v", m["icon"])
	}

	backend := m["backend"].(map[string]any)
	if backend["entry"] != "node.py" {
		t.Errorf("backend entry = %v", backend["entry"])
	}
	deps := backend["dependencies"].([]any)
	if len(deps) != 1 || deps[0] != "httpx>=0.27.0" {
		t.Errorf("backend dependencies = %v", deps)
	}
	frontend := m["frontend"].(map[string]any)
	if frontend["entry"] != "index.ts" {
		t.Errorf("frontend entry = %v", frontend["entry"])
	}

	outputs := m["outputs"].(map[string]any)
	for _, key := range []string{"text", "result", "is_error"} {
		if _, ok := outputs[key]; !ok {
			t.Errorf("outputs missing %s", key)
		}
	}
}

func TestRenderManifestInputs(t *testing.T) {
	data, err := renderManifest(searchContext(t, "http://localhost:8000/sse"))
	if err != nil {
		t.Fatal(err)
	}

	var m struct {
		Inputs map[string]map[string]any `json:"inputs"`
	}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}

	server := m.Inputs["mcp_server_url"]
	if server == nil {
		t.Fatal("inputs missing mcp_server_url")
	}
	if server["required"] != true {
		t.Error("mcp_server_url must be required")
	}
	if server["default"] != "http://localhost:8000/sse" {
		t.Errorf("mcp_server_url default = %v", server["default"])
	}

	query := m.Inputs["query"]
	if query["required"] != true || query["type"] != "string" || query["description"] != "Search query" {
		t.Errorf("query input = %v", query)
	}
	limit := m.Inputs["limit"]
	if limit["default"] != float64(10) {
		t.Errorf("limit default = %v", limit["default"])
	}
	if _, ok := limit["required"]; ok {
		t.Error("optional param must not carry a required key")
	}
	order := m.Inputs["order"]
	enum, ok := order["enum"].([]any)
	if !ok || len(enum) != 2 {
		t.Errorf("order enum = %v", order["enum"])
	}
}

func TestRenderManifestInputOrder(t *testing.T) {
	data, err := renderManifest(searchContext(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	// mcp_server_url leads, then required params, then optional ones
	// alphabetically.
	order := []string{`"mcp_server_url"`, `"query"`, `"limit"`, `"order"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(text, key)
		if idx < 0 {
			t.Fatalf("manifest missing %s", key)
		}
		if idx < last {
			t.Errorf("%s appears out of order", key)
		}
		last = idx
	}

	// Without a server URL there is no baked-in default.
	var m struct {
		Inputs map[string]map[string]any `json:"inputs"`
	}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m.Inputs["mcp_server_url"]["default"]; ok {
		t.Error("empty server URL must not produce a default")
	}
}

func TestRenderManifestDeterministic(t *testing.T) {
	first, err := renderManifest(searchContext(t, "http://h/sse"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := renderManifest(searchContext(t, "http://h/sse"))
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("manifest rendering is not deterministic")
	}
}

func TestOrderedObjectMarshal(t *testing.T) {
	o := orderedObject{
		{Key: "zeta", Value: 1},
		{Key: "alpha", Value: "x"},
	}
	data, err := json.Marshal(o)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"zeta":1,"alpha":"x"}` {
		t.Errorf("marshal = %s, want declaration order preserved", data)
	}
}
