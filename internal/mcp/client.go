package mcp

import (
	"context"
	"encoding/json"
	"fmt"
)

// Client is a high-level MCP protocol client over a Transport. It is
// used for the stdio source, which requires the full initialize
// handshake before tools can be listed; the HTTP variants go through
// Extractor instead.
type Client struct {
	transport Transport
	nextID    int
}

// NewClient creates a client using the given transport.
func NewClient(transport Transport) *Client {
	return &Client{
		transport: transport,
		nextID:    1,
	}
}

func (c *Client) allocID() int {
	id := c.nextID
	c.nextID++
	return id
}

// Initialize performs the MCP initialize handshake and sends the
// initialized notification.
func (c *Client) Initialize(ctx context.Context, clientName, clientVersion string) (*InitializeResult, error) {
	req := &JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      c.allocID(),
		Method:  "initialize",
		Params: InitializeParams{
			ProtocolVersion: "2024-11-05",
			Capabilities:    map[string]any{},
			ClientInfo: ClientInfo{
				Name:    clientName,
				Version: clientVersion,
			},
		},
	}

	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("initialize: %w", err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("initialize: server error %d: %s", resp.Error.Code, resp.Error.Message)
	}

	var result InitializeResult
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		return nil, fmt.Errorf("initialize: unmarshal result: %w", err)
	}

	// Fire-and-forget; some transports return nothing for notifications.
	notif := &JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      c.allocID(),
		Method:  "notifications/initialized",
	}
	_, _ = c.transport.Send(ctx, notif)

	return &result, nil
}

// ListTools sends a tools/list request and returns the raw tool records.
func (c *Client) ListTools(ctx context.Context) ([]RawTool, error) {
	req := &JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      c.allocID(),
		Method:  "tools/list",
	}

	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("tools/list: %w", err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("tools/list: server error %d: %s", resp.Error.Code, resp.Error.Message)
	}

	var result ToolsListResult
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		return nil, fmt.Errorf("tools/list: unmarshal result: %w", err)
	}
	return result.Tools, nil
}

// Close closes the underlying transport.
func (c *Client) Close() error {
	return c.transport.Close()
}
