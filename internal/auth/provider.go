package auth

import (
	"context"
	"encoding/base64"
	"fmt"
)

// Provider produces the HTTP headers for one authentication method.
// There is deliberately no re-authentication hook: the transport layer
// never retries, so a 401 surfaces to the caller like any other
// non-success status.
type Provider interface {
	// Headers returns the headers to attach to MCP requests.
	Headers(ctx context.Context) (map[string]string, error)
}

// NoAuth sends no authentication headers.
type NoAuth struct{}

func (NoAuth) Headers(context.Context) (map[string]string, error) {
	return nil, nil
}

// BearerToken sends an Authorization: Bearer header.
type BearerToken struct {
	Token string
}

func (p BearerToken) Headers(context.Context) (map[string]string, error) {
	if p.Token == "" {
		return nil, nil
	}
	return map[string]string{"Authorization": "Bearer " + p.Token}, nil
}

// APIKey sends the token in a custom header, X-API-Key by default.
type APIKey struct {
	Token      string
	HeaderName string
}

func (p APIKey) Headers(context.Context) (map[string]string, error) {
	if p.Token == "" {
		return nil, nil
	}
	name := p.HeaderName
	if name == "" {
		name = "X-API-Key"
	}
	return map[string]string{name: p.Token}, nil
}

// BasicAuth sends HTTP Basic credentials.
type BasicAuth struct {
	Username string
	Password string
}

func (p BasicAuth) Headers(context.Context) (map[string]string, error) {
	if p.Username == "" && p.Password == "" {
		return nil, nil
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(p.Username + ":" + p.Password))
	return map[string]string{"Authorization": "Basic " + encoded}, nil
}

// NewProvider creates a Provider from an auth type string and stored
// credentials.
func NewProvider(authType string, cred ServerCredential) (Provider, error) {
	switch authType {
	case "no_auth", "none", "":
		return NoAuth{}, nil
	case "bearer_token", "bearer":
		return BearerToken{Token: cred.Token}, nil
	case "api_key":
		return APIKey{Token: cred.Token, HeaderName: cred.HeaderName}, nil
	case "basic_auth", "basic":
		return BasicAuth{Username: cred.Username, Password: cred.Password}, nil
	case "google_sa":
		return &GoogleServiceAccount{KeyFile: cred.KeyFile}, nil
	default:
		return nil, fmt.Errorf("unknown auth type: %q", authType)
	}
}
