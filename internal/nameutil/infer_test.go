package nameutil

import (
	"testing"
)

func TestServerNameFromURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "mcp subdomain stripped",
			input: "https://mcp.linear.app/mcp",
			want:  "linear",
		},
		{
			name:  "api prefix stripped",
			input: "https://api.example.com/v1",
			want:  "example",
		},
		{
			name:  "www prefix stripped",
			input: "https://www.myservice.io/",
			want:  "myservice",
		},
		{
			name:  "plain hostname with tld",
			input: "https://github.com/repo",
			want:  "github",
		},
		{
			name:  "localhost falls back to path",
			input: "http://localhost:3000/myservice",
			want:  "myservice",
		},
		{
			name:  "ip address falls back to path",
			input: "http://127.0.0.1:8080/api/v2",
			want:  "api",
		},
		{
			name:  "all-generic hostname falls back to path",
			input: "https://mcp.com/toolset",
			want:  "toolset",
		},
		{
			name:  "multiple subdomains keep most specific",
			input: "https://mcp.api.linear.app/sse",
			want:  "linear",
		},
		{
			name:  "invalid url",
			input: "not-a-url",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ServerNameFromURL(tt.input)
			if got != tt.want {
				t.Errorf("ServerNameFromURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestServerNameFromCommand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "scoped server package",
			input: "npx @modelcontextprotocol/server-github",
			want:  "github",
		},
		{
			name:  "mcp-server prefix",
			input: "npx mcp-server-postgres",
			want:  "postgres",
		},
		{
			name:  "scoped with version suffix",
			input: "npx @org/server-redis@latest",
			want:  "redis",
		},
		{
			name:  "mcp prefix",
			input: "npx mcp-toolbox",
			want:  "toolbox",
		},
		{
			name:  "version number suffix",
			input: "npx @scope/mcp-server-db@1.2.3",
			want:  "db",
		},
		{
			name:  "script extension stripped",
			input: "node server.js",
			want:  "server",
		},
		{
			name:  "python module",
			input: "python -m mcp_server_sqlite",
			want:  "sqlite",
		},
		{
			name:  "plain command",
			input: "my-custom-tool",
			want:  "my-custom-tool",
		},
		{
			name:  "flags skipped when scanning",
			input: "npx -y @org/mcp-server-test",
			want:  "test",
		},
		{
			name:  "empty command",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ServerNameFromCommand(tt.input)
			if got != tt.want {
				t.Errorf("ServerNameFromCommand(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
