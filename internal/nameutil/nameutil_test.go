package nameutil

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "snake case",
			input: "list_directory",
			want:  "list-directory",
		},
		{
			name:  "mixed case with spaces",
			input: "Read File",
			want:  "read-file",
		},
		{
			name:  "special characters",
			input: "my@tool!v2",
			want:  "my-tool-v2",
		},
		{
			name:  "consecutive separators collapse",
			input: "hello___world",
			want:  "hello-world",
		},
		{
			name:  "leading and trailing separators trim",
			input: "__search_files__",
			want:  "search-files",
		},
		{
			name:  "already slugified",
			input: "my-tool",
			want:  "my-tool",
		},
		{
			name:  "dots",
			input: "Server.JS",
			want:  "server-js",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only special chars",
			input: "!@#$%",
			want:  "",
		},
		{
			name:  "non-ascii letters dropped",
			input: "résumé",
			want:  "r-sum",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.input)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNodeType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "snake case tool",
			input: "list_directory",
			want:  "mcp-list-directory",
		},
		{
			name:  "spaces and caps",
			input: "Read File",
			want:  "mcp-read-file",
		},
		{
			name:  "symbols",
			input: "search/files!",
			want:  "mcp-search-files",
		},
		{
			name:  "empty name keeps namespace tag",
			input: "",
			want:  "mcp-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NodeType(tt.input)
			if got != tt.want {
				t.Errorf("NodeType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "snake case tool",
			input: "list_directory",
			want:  "MCPListDirectoryNode",
		},
		{
			name:  "kebab case tool",
			input: "read-file",
			want:  "MCPReadFileNode",
		},
		{
			name:  "space separated",
			input: "get weather",
			want:  "MCPGetWeatherNode",
		},
		{
			name:  "all caps word lowers after first rune",
			input: "HTTP_request",
			want:  "MCPHttpRequestNode",
		},
		{
			name:  "consecutive separators",
			input: "fetch__remote--data",
			want:  "MCPFetchRemoteDataNode",
		},
		{
			name:  "digits preserved",
			input: "base64_encode",
			want:  "MCPBase64EncodeNode",
		},
		{
			name:  "empty name",
			input: "",
			want:  "MCPNode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassName(tt.input)
			if got != tt.want {
				t.Errorf("ClassName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "snake case",
			input: "mcp_server_url",
			want:  "Mcp Server Url",
		},
		{
			name:  "single word",
			input: "path",
			want:  "Path",
		},
		{
			name:  "kebab case",
			input: "api-key",
			want:  "Api Key",
		},
		{
			name:  "already capitalized lowers tail",
			input: "READ_FILE",
			want:  "Read File",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TitleCase(tt.input)
			if got != tt.want {
				t.Errorf("TitleCase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "basic splitting",
			input: "npx -y @org/server",
			want:  []string{"npx", "-y", "@org/server"},
		},
		{
			name:  "single quotes",
			input: "sh -c 'echo test'",
			want:  []string{"sh", "-c", "echo test"},
		},
		{
			name:  "double quotes",
			input: `sh -c "echo test"`,
			want:  []string{"sh", "-c", "echo test"},
		},
		{
			name:  "mixed quotes",
			input: `sh -c "it's a test"`,
			want:  []string{"sh", "-c", "it's a test"},
		},
		{
			name:  "backslash escaping outside quotes",
			input: `echo hello\ world`,
			want:  []string{"echo", "hello world"},
		},
		{
			name:  "backslash inside double quotes escapes special chars",
			input: `echo "say \"hello\""`,
			want:  []string{"echo", `say "hello"`},
		},
		{
			name:  "backslash inside double quotes literal for non-special",
			input: `echo "hello\nworld"`,
			want:  []string{"echo", `hello\nworld`},
		},
		{
			name:    "unterminated single quote",
			input:   "echo 'unterminated",
			wantErr: true,
		},
		{
			name:    "unterminated double quote",
			input:   `echo "unterminated`,
			wantErr: true,
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "   \t  ",
			want:  nil,
		},
		{
			name:  "extra whitespace between tokens",
			input: "npx   -y   server",
			want:  []string{"npx", "-y", "server"},
		},
		{
			name:  "empty quoted string produces token",
			input: `echo ""`,
			want:  []string{"echo", ""},
		},
		{
			name:  "single quoted empty string",
			input: "echo ''",
			want:  []string{"echo", ""},
		},
		{
			name:  "trailing backslash literal",
			input: `echo abc\`,
			want:  []string{"echo", `abc\`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitCommand(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("SplitCommand(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("SplitCommand(%q) unexpected error: %v", tt.input, err)
			}
			if !sliceEqual(got, tt.want) {
				t.Errorf("SplitCommand(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// sliceEqual compares two string slices for equality.
func sliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
