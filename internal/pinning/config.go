package pinning

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Mode controls how pinned params surface in generated bundles.
type Mode string

const (
	// ModeHidden drops the param from the frontend form and type surface;
	// the backend passes the pinned literal directly.
	ModeHidden Mode = "hidden"
	// ModeDefault keeps the param visible and makes the pinned value its
	// default in the manifest, backend extraction, and frontend defaults.
	ModeDefault Mode = "default"
)

// ToolPins holds per-tool parameter pins.
type ToolPins struct {
	Params map[string]any `json:"params"`
}

// GlobalPins holds pins applied to every tool.
type GlobalPins struct {
	Params map[string]any `json:"params"`
}

// Config is the top-level pinning configuration loaded from --pin.
type Config struct {
	Mode   Mode                `json:"mode"`
	Global GlobalPins          `json:"global"`
	Tools  map[string]ToolPins `json:"tools"`
}

// Load reads and validates a pinning config from a JSON file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pinning: reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("pinning: parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Mode == "" {
		c.Mode = ModeHidden
	}
	switch c.Mode {
	case ModeHidden, ModeDefault:
	default:
		return fmt.Errorf("pinning: unknown mode %q (must be %q or %q)", c.Mode, ModeHidden, ModeDefault)
	}

	for name := range c.Global.Params {
		if name == "" {
			return fmt.Errorf("pinning: global params contain an empty param name")
		}
	}
	for tool, tp := range c.Tools {
		for name := range tp.Params {
			if name == "" {
				return fmt.Errorf("pinning: tool %q params contain an empty param name", tool)
			}
		}
	}
	return nil
}

// Merge returns the effective pins for one tool: global params first,
// tool-specific params overriding on conflict.
func (c *Config) Merge(toolName string) map[string]any {
	merged := make(map[string]any, len(c.Global.Params))
	for k, v := range c.Global.Params {
		merged[k] = v
	}
	if tp, ok := c.Tools[toolName]; ok {
		for k, v := range tp.Params {
			merged[k] = v
		}
	}
	return merged
}

// ParamNames returns all pinned param names for a tool, sorted, which
// keeps hidden-mode generation deterministic.
func (c *Config) ParamNames(toolName string) []string {
	merged := c.Merge(toolName)
	names := make([]string, 0, len(merged))
	for k := range merged {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
