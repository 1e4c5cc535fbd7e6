package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// HTTPTransport implements the direct protocol variant: each JSON-RPC
// request is one HTTP POST and the response body carries the JSON-RPC
// response. Extra headers (auth, custom) are applied to every request.
type HTTPTransport struct {
	URL        string
	Headers    map[string]string
	httpClient *http.Client
}

// NewHTTPTransport creates an HTTPTransport targeting url. headers may
// be nil. client may be nil, in which case http.DefaultClient is used;
// callers own the timeout via the request context.
func NewHTTPTransport(url string, headers map[string]string, client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{
		URL:        url,
		Headers:    headers,
		httpClient: client,
	}
}

// Send posts one JSON-RPC request and decodes the JSON-RPC response.
// Network failures, non-2xx statuses, and undecodable bodies all
// surface as TransportError. There are no retries.
func (t *HTTPTransport) Send(ctx context.Context, req *JSONRPCRequest) (*JSONRPCResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &TransportError{Endpoint: t.URL, Phase: "request", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.URL, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Endpoint: t.URL, Phase: "request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range t.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Endpoint: t.URL, Phase: "connect", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &TransportError{
			Endpoint: t.URL,
			Phase:    "status",
			Err:      fmt.Errorf("http status %d: %s", resp.StatusCode, detail),
		}
	}

	var rpcResp JSONRPCResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return nil, &TransportError{Endpoint: t.URL, Phase: "decode", Err: err}
	}
	return &rpcResp, nil
}

// Close is a no-op; each request is independent.
func (t *HTTPTransport) Close() error {
	return nil
}
