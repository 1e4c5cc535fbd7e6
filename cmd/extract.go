package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thellimist/nodehub/internal/nameutil"
	"github.com/thellimist/nodehub/internal/schema"
)

var flagExtractOutput string

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract tool schemas from an MCP server to a JSON file",
	Long: `Extract tool schemas from an MCP server and save them as JSON.

The saved file can later feed 'nodehub generate --schema', including in
watch mode, without reconnecting to the server.

Examples:
  # From an HTTP MCP server
  nodehub extract --url https://mcp.example.com/mcp -o tools.json

  # From a stdio MCP server
  nodehub extract --stdio "npx @modelcontextprotocol/server-filesystem /tmp" -o tools.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runExtract,
}

func init() {
	f := extractCmd.Flags()
	addSourceFlags(f)
	f.StringVarP(&flagExtractOutput, "output", "o", "", "path of the schema file to write (defaults to <server>-tools.json)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	if err := applyFileConfig(cmd); err != nil {
		return err
	}
	if err := validateSourceFlags(); err != nil {
		return err
	}

	logger := newLogger()
	defer logger.Sync()

	schemas, target, err := acquireSchemas(context.Background(), logger)
	if err != nil {
		return err
	}
	verbose("Extracted %d tool schemas from %s", len(schemas), target)

	if flagExtractOutput == "" {
		flagExtractOutput = defaultSchemaPath()
	}
	if err := schema.Save(flagExtractOutput, schemas); err != nil {
		return err
	}
	fmt.Printf("Saved %d tool schemas to %s\n", len(schemas), flagExtractOutput)
	return nil
}

// defaultSchemaPath names the output file after the server when no
// --output was given.
func defaultSchemaPath() string {
	name := ""
	if flagURL != "" {
		name = nameutil.ServerNameFromURL(flagURL)
	} else {
		name = nameutil.ServerNameFromCommand(flagStdio)
	}
	if name == "" {
		return "tools.json"
	}
	return name + "-tools.json"
}
