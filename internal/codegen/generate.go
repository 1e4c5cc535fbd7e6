package codegen

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/thellimist/nodehub/internal/pinning"
	"github.com/thellimist/nodehub/internal/schema"
)

// WriteError reports a failed bundle file write. The bundle it belongs
// to is aborted; whether the batch continues is the caller's call.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Generator writes one bundle per tool schema under OutputRoot.
// Generation is deterministic: the same schema, server URL, and pins
// always produce byte-identical files, and existing files are
// overwritten in place.
type Generator struct {
	OutputRoot string
	ServerURL  string
	Pins       *pinning.Config

	logger *zap.Logger
}

// NewGenerator creates a Generator. serverURL may be empty; pins and
// logger may be nil.
func NewGenerator(outputRoot, serverURL string, pins *pinning.Config, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		OutputRoot: outputRoot,
		ServerURL:  serverURL,
		Pins:       pins,
		logger:     logger.Named("codegen"),
	}
}

// Bundle file layout, relative to the bundle directory.
const (
	manifestFile = "manifest.json"
	backendDir   = "backend"
	frontendDir  = "frontend"
)

var frontendTemplates = []string{
	"index.ts",
	"types.ts",
	"node.tsx",
	"panel.tsx",
	"use-config.ts",
	"default.ts",
}

// Generate writes the complete bundle for one tool schema and returns
// the bundle directory. A failed write aborts this bundle only; files
// already written stay on disk (writes are not transactional).
func (g *Generator) Generate(ts schema.ToolSchema) (string, error) {
	ctx := BuildContext(ts, g.ServerURL, g.Pins)
	nodeDir := filepath.Join(g.OutputRoot, ctx.NodeType)

	for _, dir := range []string{nodeDir, filepath.Join(nodeDir, backendDir), filepath.Join(nodeDir, frontendDir)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", &WriteError{Path: dir, Err: err}
		}
	}

	manifest, err := renderManifest(ctx)
	if err != nil {
		return "", fmt.Errorf("render manifest: %w", err)
	}
	if err := writeFile(filepath.Join(nodeDir, manifestFile), manifest); err != nil {
		return "", err
	}

	// Backend group: module initializer plus the invocation logic.
	if err := writeFile(filepath.Join(nodeDir, backendDir, "__init__.py"), nil); err != nil {
		return "", err
	}
	nodePy, err := render("node.py.tmpl", ctx)
	if err != nil {
		return "", err
	}
	if err := writeFile(filepath.Join(nodeDir, backendDir, "node.py"), nodePy); err != nil {
		return "", err
	}

	for _, name := range frontendTemplates {
		content, err := render(name+".tmpl", ctx)
		if err != nil {
			return "", err
		}
		if err := writeFile(filepath.Join(nodeDir, frontendDir, name), content); err != nil {
			return "", err
		}
	}

	g.logger.Debug("bundle generated",
		zap.String("tool", ts.Name),
		zap.String("node_type", ctx.NodeType),
		zap.String("dir", nodeDir))
	return nodeDir, nil
}

func writeFile(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
