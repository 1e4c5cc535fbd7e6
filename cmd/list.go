package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thellimist/nodehub/internal/schema"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tools an MCP server exposes",
	Long: `List the tools an MCP server exposes without generating anything.

Examples:
  # From an HTTP MCP server
  nodehub list --url https://mcp.example.com/mcp

  # From a stdio MCP server
  nodehub list --stdio "npx @modelcontextprotocol/server-filesystem /tmp"`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runList,
}

func init() {
	addSourceFlags(listCmd.Flags())
}

func runList(cmd *cobra.Command, args []string) error {
	if err := applyFileConfig(cmd); err != nil {
		return err
	}
	if err := validateSourceFlags(); err != nil {
		return err
	}

	logger := newLogger()
	defer logger.Sync()

	if flagURL != "" {
		fmt.Printf("Connecting to MCP server: %s\n", flagURL)
	} else {
		fmt.Printf("Starting MCP server: %s\n", flagStdio)
	}

	schemas, _, err := acquireSchemas(context.Background(), logger)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d tools:\n\n", len(schemas))
	for _, ts := range schemas {
		fmt.Printf("  %s\n", ts.Name)
		if desc := truncate(ts.Description, 80); desc != "" {
			fmt.Printf("    %s\n", desc)
		}
		fmt.Printf("    Node type: %s\n", ts.NodeType)
		fmt.Printf("    Parameters: %s\n", paramSummary(ts))
	}
	return nil
}

func paramSummary(ts schema.ToolSchema) string {
	params := schema.ExtractParams(ts)
	if len(params) == 0 {
		return "none"
	}
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
