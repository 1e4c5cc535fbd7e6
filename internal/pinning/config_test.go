package pinning

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pins.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `{
		"mode": "hidden",
		"global": {"params": {"tenant": "acme"}},
		"tools": {"search": {"params": {"path": "/data"}}}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ModeHidden, cfg.Mode)
	assert.Equal(t, "acme", cfg.Global.Params["tenant"])
	assert.Equal(t, "/data", cfg.Tools["search"].Params["path"])
}

func TestLoadDefaultsToHiddenMode(t *testing.T) {
	path := writeConfig(t, `{"global": {"params": {"a": 1}}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ModeHidden, cfg.Mode)
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	path := writeConfig(t, `{"mode": "invisible"}`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestLoadRejectsEmptyParamName(t *testing.T) {
	path := writeConfig(t, `{"mode": "default", "global": {"params": {"": "x"}}}`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeConfig(t, `{oops`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestMergeToolOverridesGlobal(t *testing.T) {
	cfg := &Config{
		Mode:   ModeHidden,
		Global: GlobalPins{Params: map[string]any{"a": "global", "b": "global"}},
		Tools: map[string]ToolPins{
			"search": {Params: map[string]any{"b": "tool", "c": "tool"}},
		},
	}

	merged := cfg.Merge("search")
	assert.Equal(t, map[string]any{"a": "global", "b": "tool", "c": "tool"}, merged)

	// Other tools only see the global pins.
	assert.Equal(t, map[string]any{"a": "global", "b": "global"}, cfg.Merge("other"))
}

func TestParamNamesSorted(t *testing.T) {
	cfg := &Config{
		Mode:   ModeHidden,
		Global: GlobalPins{Params: map[string]any{"zeta": 1, "alpha": 2}},
		Tools: map[string]ToolPins{
			"t": {Params: map[string]any{"mid": 3}},
		},
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, cfg.ParamNames("t"))
}
