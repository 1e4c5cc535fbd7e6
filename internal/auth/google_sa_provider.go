package auth

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleServiceAccount authenticates requests with a Google service
// account JSON key: the key signs a JWT exchanged for a bearer token.
type GoogleServiceAccount struct {
	// KeyFile is the path to the service account JSON key file.
	KeyFile string
	// Scopes are the OAuth2 scopes to request; cloud-platform when empty.
	Scopes []string

	mu          sync.Mutex
	tokenSource oauth2.TokenSource
}

func (p *GoogleServiceAccount) Headers(ctx context.Context) (map[string]string, error) {
	ts, err := p.getTokenSource(ctx)
	if err != nil {
		return nil, err
	}
	token, err := ts.Token()
	if err != nil {
		return nil, fmt.Errorf("google service account token: %w", err)
	}
	return map[string]string{"Authorization": "Bearer " + token.AccessToken}, nil
}

func (p *GoogleServiceAccount) getTokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.tokenSource != nil {
		return p.tokenSource, nil
	}

	keyData, err := os.ReadFile(p.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("read service account key file %s: %w", p.KeyFile, err)
	}

	scopes := p.Scopes
	if len(scopes) == 0 {
		scopes = []string{"https://www.googleapis.com/auth/cloud-platform"}
	}

	creds, err := google.CredentialsFromJSON(ctx, keyData, scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse service account key: %w", err)
	}

	p.tokenSource = creds.TokenSource
	return p.tokenSource, nil
}
