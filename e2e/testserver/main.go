// Package main implements a minimal MCP stdio server for E2E testing.
// Its tools cover the schema shapes the generator cares about: required
// params, defaults, enums, booleans, numbers and a sensitive param. Each
// tool echoes the received arguments as JSON text so tests can assert
// exactly which params were sent.
package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	s := server.NewMCPServer("echo-tools", "1.0.0")

	s.AddTool(
		mcp.NewTool("search_files",
			mcp.WithDescription("Searches files under a directory for a pattern"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Directory to search")),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("Glob or substring to match")),
			mcp.WithNumber("max_results", mcp.DefaultNumber(10), mcp.Description("Maximum number of matches")),
			mcp.WithBoolean("case_sensitive", mcp.Description("Match case exactly")),
		),
		echoHandler,
	)

	s.AddTool(
		mcp.NewTool("write_report",
			mcp.WithDescription("Writes a report file in the chosen format"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Destination file path")),
			mcp.WithString("content", mcp.Required(), mcp.Description("Report body")),
			mcp.WithString("format",
				mcp.Enum("markdown", "html", "text"),
				mcp.DefaultString("markdown"),
				mcp.Description("Output format"),
			),
		),
		echoHandler,
	)

	s.AddTool(
		mcp.NewTool("call_api",
			mcp.WithDescription("Calls an external API endpoint"),
			mcp.WithString("endpoint", mcp.Required(), mcp.Description("URL to call")),
			mcp.WithString("api_key", mcp.Description("Credential for the API")),
		),
		echoHandler,
	)

	if err := server.ServeStdio(s); err != nil {
		fmt.Printf("server error: %v\n", err)
	}
}

func echoHandler(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	data, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("marshal args: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: string(data),
			},
		},
	}, nil
}
