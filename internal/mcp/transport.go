package mcp

import "context"

// Transport sends JSON-RPC requests to an MCP server over one wire
// variant (direct HTTP or a spawned stdio process).
type Transport interface {
	// Send sends one JSON-RPC request and returns the response.
	Send(ctx context.Context, req *JSONRPCRequest) (*JSONRPCResponse, error)
	// Close releases any resources held by the transport.
	Close() error
}
