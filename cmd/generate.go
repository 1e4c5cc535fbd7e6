package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thellimist/nodehub/internal/codegen"
	"github.com/thellimist/nodehub/internal/pinning"
	"github.com/thellimist/nodehub/internal/schema"
	"github.com/thellimist/nodehub/internal/toolfilter"
	"github.com/thellimist/nodehub/internal/watch"
)

var (
	flagSchema       string
	flagOutput       string
	flagServerURL    string
	flagTools        string
	flagExcludeTools string
	flagPin          string
	flagWatch        bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate workflow node bundles from MCP tools",
	Long: `Generate one workflow node bundle per MCP tool.

Each bundle contains a manifest, a Python backend node and the TypeScript
frontend files needed to register the node in a workflow editor.

Examples:
  # From an HTTP MCP server
  nodehub generate --url https://mcp.example.com/mcp -o ./nodes

  # From a stdio MCP server
  nodehub generate --stdio "npx @modelcontextprotocol/server-filesystem /tmp" -o ./nodes

  # From a previously extracted schema file
  nodehub generate --schema tools.json --server-url https://mcp.example.com/mcp -o ./nodes

  # Regenerate whenever the schema file changes
  nodehub generate --schema tools.json --watch -o ./nodes

  # Only some tools, with a pinned parameter
  nodehub generate --url https://mcp.example.com/mcp --tools search,query --pin pins.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	f := generateCmd.Flags()
	addSourceFlags(f)
	f.StringVar(&flagSchema, "schema", "", "path to a previously extracted schema file")
	f.StringVarP(&flagOutput, "output", "o", "./nodes", "directory where node bundles are written")
	f.StringVar(&flagServerURL, "server-url", "", "MCP server URL baked into generated nodes (defaults to --url)")
	f.StringVar(&flagTools, "tools", "", "only generate these tools (comma-separated)")
	f.StringVar(&flagExcludeTools, "exclude-tools", "", "exclude these tools (comma-separated)")
	f.StringVar(&flagPin, "pin", "", "path to a pin configuration file")
	f.BoolVar(&flagWatch, "watch", false, "watch the schema file and regenerate on change")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := applyFileConfig(cmd); err != nil {
		return err
	}
	if err := validateGenerateFlags(); err != nil {
		return err
	}

	logger := newLogger()
	defer logger.Sync()

	var pins *pinning.Config
	if flagPin != "" {
		loaded, err := pinning.Load(flagPin)
		if err != nil {
			return err
		}
		pins = loaded
	}

	serverURL := flagServerURL
	if serverURL == "" {
		serverURL = flagURL
	}

	loadSchemas := func(ctx context.Context) ([]schema.ToolSchema, string, error) {
		if flagSchema != "" {
			schemas, err := schema.Load(flagSchema)
			return schemas, flagSchema, err
		}
		return acquireSchemas(ctx, logger)
	}

	if flagWatch {
		return runWatch(logger, serverURL, pins)
	}

	schemas, target, err := loadSchemas(context.Background())
	if err != nil {
		return err
	}
	verbose("Loaded %d tool schemas from %s", len(schemas), target)

	return generateBundles(schemas, serverURL, pins, logger)
}

// generateBundles filters the schemas and writes one bundle per tool. A
// failed tool is reported and skipped; the command only fails when every
// tool failed.
func generateBundles(schemas []schema.ToolSchema, serverURL string, pins *pinning.Config, logger *zap.Logger) error {
	include := toolfilter.ParseToolList(flagTools)
	exclude := toolfilter.ParseToolList(flagExcludeTools)
	filtered, err := toolfilter.Filter(schemas, include, exclude)
	if err != nil {
		return err
	}
	if len(filtered) == 0 {
		if flagSchema != "" {
			return fmt.Errorf("schema file %s contains no tools", flagSchema)
		}
		return fmt.Errorf("MCP server returned no tools")
	}

	if err := codegen.CheckCollisions(filtered); err != nil {
		return err
	}

	generator := codegen.NewGenerator(flagOutput, serverURL, pins, logger)

	fmt.Printf("Generating %d nodes to %s:\n", len(filtered), flagOutput)
	generated := 0
	for _, ts := range filtered {
		dir, err := generator.Generate(ts)
		if err != nil {
			fmt.Printf("  \u2717 %s: %s\n", ts.Name, err)
			continue
		}
		fmt.Printf("  \u2713 %s -> %s/\n", ts.Name, dir)
		generated++
	}
	if generated == 0 {
		return fmt.Errorf("no nodes could be generated")
	}
	fmt.Printf("\nDone! Generated nodes are in %s\n", flagOutput)
	return nil
}

// runWatch regenerates bundles from the schema file on every change until
// interrupted. Failures of individual runs keep the watcher alive.
func runWatch(logger *zap.Logger, serverURL string, pins *pinning.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	regenerate := func() {
		schemas, err := schema.Load(flagSchema)
		if err != nil {
			fmt.Printf("Watch: failed to load %s: %s\n", flagSchema, err)
			return
		}
		if err := generateBundles(schemas, serverURL, pins, logger); err != nil {
			fmt.Printf("Watch: %s\n", err)
		}
	}

	regenerate()
	fmt.Printf("Watching %s for changes (Ctrl+C to stop)\n", flagSchema)
	return watch.Watch(ctx, flagSchema, watch.DefaultDebounce, logger, regenerate)
}

func validateGenerateFlags() error {
	sources := 0
	for _, s := range []string{flagURL, flagStdio, flagSchema} {
		if s != "" {
			sources++
		}
	}
	if sources == 0 {
		return fmt.Errorf("provide --url, --stdio or --schema to specify the tool source")
	}
	if sources > 1 {
		return fmt.Errorf("--url, --stdio and --schema cannot be used together")
	}
	if flagWatch && flagSchema == "" {
		return fmt.Errorf("--watch requires --schema")
	}
	if flagTools != "" && flagExcludeTools != "" {
		return fmt.Errorf("--tools and --exclude-tools cannot be used together")
	}
	if flagSchema == "" {
		return validateSourceFlags()
	}
	return nil
}
