package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrNoSessionEndpoint is wrapped into the TransportError returned when
// an SSE handshake stream closes without announcing a session endpoint.
var ErrNoSessionEndpoint = errors.New("no session endpoint received")

// DiscoverSessionEndpoint performs the event-stream handshake: it opens
// streamURL as a text/event-stream and scans "data: "-framed events for
// the first JSON payload carrying an "endpoint" key. That value is the
// session endpoint, resolved against the stream URL when relative, and
// is where the discovery request must then be sent.
//
// Events that are not valid JSON or carry no endpoint are skipped. If
// the stream closes without one, the handshake fails; reconnects are
// the caller's decision, never attempted here.
func DiscoverSessionEndpoint(ctx context.Context, streamURL string, headers map[string]string, client *http.Client) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, streamURL, nil)
	if err != nil {
		return "", &TransportError{Endpoint: streamURL, Phase: "handshake", Err: err}
	}
	req.Header.Set("Accept", "text/event-stream")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", &TransportError{Endpoint: streamURL, Phase: "handshake", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &TransportError{
			Endpoint: streamURL,
			Phase:    "handshake",
			Err:      fmt.Errorf("http status %d: %s", resp.StatusCode, detail),
		}
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		data, ok := strings.CutPrefix(scanner.Text(), "data: ")
		if !ok {
			continue
		}

		var payload map[string]any
		if err := json.Unmarshal([]byte(data), &payload); err != nil {
			continue
		}
		endpoint, ok := payload["endpoint"].(string)
		if !ok || endpoint == "" {
			continue
		}
		return resolveEndpoint(streamURL, endpoint), nil
	}
	if err := scanner.Err(); err != nil {
		return "", &TransportError{Endpoint: streamURL, Phase: "handshake", Err: err}
	}

	return "", &TransportError{Endpoint: streamURL, Phase: "handshake", Err: ErrNoSessionEndpoint}
}

// resolveEndpoint resolves a possibly relative session endpoint against
// the stream URL. An unparseable endpoint is returned as-is.
func resolveEndpoint(streamURL, endpoint string) string {
	base, err := url.Parse(streamURL)
	if err != nil {
		return endpoint
	}
	ref, err := url.Parse(endpoint)
	if err != nil {
		return endpoint
	}
	return base.ResolveReference(ref).String()
}
