package auth

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// CredentialsFile represents the ~/.nodehub/credentials.json file.
type CredentialsFile struct {
	Version int                         `json:"version"`
	Servers map[string]ServerCredential `json:"servers"`
}

// ServerCredential holds auth info for a single server URL.
type ServerCredential struct {
	Type       string `json:"type"`                  // "bearer", "api_key", "basic", "google_sa"
	Token      string `json:"token,omitempty"`       // bearer / api_key
	HeaderName string `json:"header_name,omitempty"` // api_key custom header
	Username   string `json:"username,omitempty"`    // basic
	Password   string `json:"password,omitempty"`    // basic
	KeyFile    string `json:"key_file,omitempty"`    // google_sa key path
}

// LoadCredentials reads and parses the credentials file at path. A
// missing file is not an error; it yields an empty store.
func LoadCredentials(path string) (*CredentialsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &CredentialsFile{
				Version: 1,
				Servers: make(map[string]ServerCredential),
			}, nil
		}
		return nil, err
	}

	var creds CredentialsFile
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}
	if creds.Servers == nil {
		creds.Servers = make(map[string]ServerCredential)
	}
	return &creds, nil
}

// SaveCredentials writes the store to path, creating the parent
// directory with 0700 and the file with 0600 (owner-only).
func SaveCredentials(path string, creds *CredentialsFile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// GetCredential returns the stored credential for serverURL. The bool
// is false when the store has no entry for that server.
func GetCredential(creds *CredentialsFile, serverURL string) (ServerCredential, bool) {
	if creds.Servers == nil {
		return ServerCredential{}, false
	}
	cred, ok := creds.Servers[serverURL]
	return cred, ok
}

// SetToken stores a bearer token for serverURL.
func SetToken(creds *CredentialsFile, serverURL, token string) {
	if creds.Servers == nil {
		creds.Servers = make(map[string]ServerCredential)
	}
	creds.Servers[serverURL] = ServerCredential{
		Type:  "bearer",
		Token: token,
	}
}
