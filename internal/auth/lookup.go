package auth

import (
	"os"
	"path/filepath"
)

// DefaultCredentialsPath returns the credentials file path: the
// NODEHUB_CREDENTIALS_FILE env var when set, else
// ~/.nodehub/credentials.json.
func DefaultCredentialsPath() string {
	if p := os.Getenv("NODEHUB_CREDENTIALS_FILE"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nodehub", "credentials.json")
}

// LookupCredential resolves the credential for serverURL in priority
// order:
//
//  1. flagToken (from --auth-token) when non-empty, as a bearer token
//  2. the NODEHUB_AUTH_TOKEN env var when set, as a bearer token
//  3. the credentials file entry for serverURL, with its stored type
//
// The bool is false when nothing is found anywhere.
func LookupCredential(flagToken, serverURL string) (ServerCredential, bool) {
	if flagToken != "" {
		return ServerCredential{Type: "bearer", Token: flagToken}, true
	}
	if t := os.Getenv("NODEHUB_AUTH_TOKEN"); t != "" {
		return ServerCredential{Type: "bearer", Token: t}, true
	}

	path := DefaultCredentialsPath()
	if path == "" {
		return ServerCredential{}, false
	}
	creds, err := LoadCredentials(path)
	if err != nil {
		return ServerCredential{}, false
	}
	return GetCredential(creds, serverURL)
}
