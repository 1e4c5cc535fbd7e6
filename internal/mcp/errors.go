package mcp

import "fmt"

// TransportError reports a failure talking to an MCP endpoint:
// connectivity, a non-success status, a malformed payload, or a
// handshake that never produced a session endpoint. Phase names the
// step that failed so the error is diagnosable without a retry.
type TransportError struct {
	Endpoint string
	Phase    string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("mcp %s: %s: %v", e.Phase, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
