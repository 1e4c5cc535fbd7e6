package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestGoogleServiceAccountImplementsProvider(t *testing.T) {
	var _ Provider = &GoogleServiceAccount{}
}

func TestGoogleServiceAccountMissingKeyFile(t *testing.T) {
	p := &GoogleServiceAccount{KeyFile: filepath.Join(t.TempDir(), "absent.json")}
	_, err := p.Headers(context.Background())
	if err == nil {
		t.Fatal("expected an error for a missing key file")
	}
}

func TestGoogleServiceAccountInvalidKeyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.json")
	if err := os.WriteFile(path, []byte("not a key"), 0600); err != nil {
		t.Fatal(err)
	}
	p := &GoogleServiceAccount{KeyFile: path}
	if _, err := p.Headers(context.Background()); err == nil {
		t.Fatal("expected an error for an unparseable key file")
	}
}
