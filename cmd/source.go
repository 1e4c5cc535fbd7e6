package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/thellimist/nodehub/internal/auth"
	"github.com/thellimist/nodehub/internal/mcp"
	"github.com/thellimist/nodehub/internal/nameutil"
	"github.com/thellimist/nodehub/internal/schema"
)

// Source flags shared by list, extract and generate. Only one command runs
// per invocation, so the commands can share the backing variables.
var (
	flagURL       string
	flagStdio     string
	flagHeaders   string
	flagAuthToken string
	flagTimeout   int
	flagEnv       []string
)

const defaultTimeoutMS = 30000

func addSourceFlags(f *pflag.FlagSet) {
	f.StringVar(&flagURL, "url", "", "HTTP or SSE URL of an MCP server")
	f.StringVar(&flagStdio, "stdio", "", "shell command that spawns a local MCP server via stdin/stdout")
	f.StringVar(&flagHeaders, "headers", "", "extra HTTP headers as Key:Value,Key2:Value2")
	f.StringVar(&flagAuthToken, "auth-token", "", "bearer token for authenticated MCP servers")
	f.IntVar(&flagTimeout, "timeout", defaultTimeoutMS, "timeout in milliseconds for MCP requests")
	f.StringSliceVar(&flagEnv, "env", nil, "environment variables for stdio servers (KEY=VALUE, repeatable)")
}

func validateSourceFlags() error {
	if flagURL == "" && flagStdio == "" {
		return fmt.Errorf("provide --url or --stdio to specify the MCP server")
	}
	if flagURL != "" && flagStdio != "" {
		return fmt.Errorf("--url and --stdio cannot be used together")
	}
	for _, env := range flagEnv {
		if !strings.Contains(env, "=") {
			return fmt.Errorf("invalid --env format %q: expected KEY=VALUE", env)
		}
	}
	return nil
}

// parseHeaders parses a Key:Value,Key2:Value2 header string. Entries
// without a colon are skipped.
func parseHeaders(raw string) map[string]string {
	headers := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			continue
		}
		headers[key] = value
	}
	return headers
}

// requestHeaders merges --headers with any resolved credential. An explicit
// Authorization header always wins over the credential lookup. Stored
// credentials keep their type: an api_key entry sends its custom header,
// a basic entry sends Basic auth, a google_sa entry mints a service
// account token.
func requestHeaders(ctx context.Context, serverURL string) (map[string]string, error) {
	headers := map[string]string{}
	if flagHeaders != "" {
		headers = parseHeaders(flagHeaders)
	}
	if _, ok := headers["Authorization"]; ok {
		return headers, nil
	}
	cred, ok := auth.LookupCredential(flagAuthToken, serverURL)
	if !ok {
		return headers, nil
	}
	provider, err := auth.NewProvider(cred.Type, cred)
	if err != nil {
		return nil, err
	}
	authHeaders, err := provider.Headers(ctx)
	if err != nil {
		return nil, err
	}
	for k, v := range authHeaders {
		headers[k] = v
	}
	return headers, nil
}

// acquireSchemas connects to the MCP server named by the source flags and
// returns its tool schemas plus a human-readable target label.
func acquireSchemas(ctx context.Context, logger *zap.Logger) ([]schema.ToolSchema, string, error) {
	timeout := time.Duration(flagTimeout) * time.Millisecond

	if flagURL != "" {
		headers, err := requestHeaders(ctx, flagURL)
		if err != nil {
			return nil, "", err
		}
		extractor := mcp.NewExtractor(flagURL, headers, timeout, logger)
		schemas, err := extractor.ExtractTools(ctx)
		if err != nil {
			return nil, "", err
		}
		return schemas, flagURL, nil
	}

	if flagAuthToken != "" {
		fmt.Println("Warning: --auth-token is ignored for stdio servers. Use --env to pass credentials")
	}

	parts, err := nameutil.SplitCommand(flagStdio)
	if err != nil {
		return nil, "", fmt.Errorf("invalid --stdio command: %s", err)
	}
	if len(parts) == 0 {
		return nil, "", fmt.Errorf("--stdio command is empty")
	}

	transport := mcp.NewStdioTransport(parts[0], parts[1:], flagEnv)
	if err := transport.Start(); err != nil {
		return nil, "", fmt.Errorf("failed to start MCP server %q: %s", flagStdio, err)
	}

	client := mcp.NewClient(transport)
	defer client.Close()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := client.Initialize(ctx, "nodehub", appVersion); err != nil {
		if ctx.Err() != nil {
			return nil, "", fmt.Errorf("MCP server did not respond within %dms", flagTimeout)
		}
		return nil, "", fmt.Errorf("MCP server %q did not complete initialization handshake: %s", flagStdio, err)
	}

	tools, err := client.ListTools(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, "", fmt.Errorf("MCP server did not respond within %dms", flagTimeout)
		}
		return nil, "", err
	}

	schemas, err := mcp.ConvertTools(tools)
	if err != nil {
		return nil, "", err
	}
	return schemas, flagStdio, nil
}
