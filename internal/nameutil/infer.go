package nameutil

import (
	"net"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
)

// Hostname segments that carry no identity: stripped from the left
// (service prefixes) and the right (TLDs) before picking a name.
var (
	genericHostPrefixes = map[string]bool{"www": true, "api": true, "mcp": true}
	genericHostSuffixes = map[string]bool{
		"com": true, "io": true, "app": true, "dev": true, "org": true, "net": true,
	}
)

var packageVersionSuffix = regexp.MustCompile(`@[^/]*$`)

// ServerNameFromURL infers a short server name from an endpoint URL,
// for default output file naming. It prefers the most specific
// non-generic hostname segment and falls back to the first path
// segment for localhost, IP addresses, and all-generic hostnames.
// Returns "" when nothing usable remains.
func ServerNameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}

	host := u.Hostname()
	local := host == "localhost" || net.ParseIP(host) != nil

	if !local {
		parts := strings.Split(host, ".")
		for len(parts) > 0 && genericHostPrefixes[parts[0]] {
			parts = parts[1:]
		}
		for len(parts) > 0 && genericHostSuffixes[parts[len(parts)-1]] {
			parts = parts[:len(parts)-1]
		}
		if len(parts) > 0 {
			if slug := Slugify(parts[len(parts)-1]); slug != "" {
				return slug
			}
		}
	}

	for _, seg := range strings.Split(strings.Trim(u.Path, "/"), "/") {
		if slug := Slugify(seg); slug != "" {
			return slug
		}
	}

	return ""
}

// ServerNameFromCommand infers a short server name from a stdio launch
// command. It picks the package-looking token (scanning from the end
// for one containing "/", starting with "@", or not flag-shaped),
// strips scope, version suffix, file extension, and common
// mcp-server-/server-/mcp- prefixes. Returns "" when nothing usable
// remains.
func ServerNameFromCommand(command string) string {
	tokens, err := SplitCommand(command)
	if err != nil || len(tokens) == 0 {
		return ""
	}

	var token string
	for i := len(tokens) - 1; i >= 0; i-- {
		t := tokens[i]
		if strings.Contains(t, "/") || strings.HasPrefix(t, "@") || !strings.HasPrefix(t, "-") {
			token = t
			break
		}
	}
	if token == "" {
		return ""
	}

	name := token
	if strings.HasPrefix(name, "@") {
		if idx := strings.Index(name, "/"); idx >= 0 {
			name = name[idx+1:]
		}
	}
	name = packageVersionSuffix.ReplaceAllString(name, "")
	name = strings.TrimSuffix(name, filepath.Ext(name))

	// Underscores to dashes so the prefix table matches uniformly.
	name = strings.ReplaceAll(name, "_", "-")
	for _, prefix := range []string{"mcp-server-", "server-", "mcp-"} {
		if strings.HasPrefix(name, prefix) {
			name = strings.TrimPrefix(name, prefix)
			break
		}
	}

	return Slugify(name)
}
