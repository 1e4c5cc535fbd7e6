package mcp

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/thellimist/nodehub/internal/schema"
)

// Extractor obtains tool schemas from a remote MCP endpoint. It selects
// the protocol variant from the endpoint path: an /sse path segment (or
// suffix) means the event-stream handshake must run first to learn the
// session endpoint, anything else is a single direct tools/list call.
type Extractor struct {
	Endpoint string
	Headers  map[string]string
	Timeout  time.Duration

	logger     *zap.Logger
	httpClient *http.Client
}

// NewExtractor creates an Extractor for endpoint. headers may be nil;
// timeout bounds the whole fetch including the handshake. logger may be
// nil.
func NewExtractor(endpoint string, headers map[string]string, timeout time.Duration, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		Endpoint:   endpoint,
		Headers:    headers,
		Timeout:    timeout,
		logger:     logger.Named("extractor"),
		httpClient: &http.Client{},
	}
}

// ExtractTools fetches the tool list and returns normalized schemas.
// There are no retries at any phase; transport failures surface as
// TransportError, records without a name as schema.SchemaError.
func (e *Extractor) ExtractTools(ctx context.Context) ([]schema.ToolSchema, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	target := e.Endpoint
	if e.usesHandshake() {
		e.logger.Debug("endpoint matches event-stream convention, running handshake",
			zap.String("endpoint", e.Endpoint))
		session, err := DiscoverSessionEndpoint(ctx, e.Endpoint, e.Headers, e.httpClient)
		if err != nil {
			return nil, err
		}
		e.logger.Debug("session endpoint received", zap.String("session_endpoint", session))
		target = session
	}

	transport := NewHTTPTransport(target, e.Headers, e.httpClient)
	defer transport.Close()

	resp, err := transport.Send(ctx, &JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/list",
	})
	if err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, &TransportError{
			Endpoint: target,
			Phase:    "tools/list",
			Err:      resp.Error.toError(),
		}
	}

	var result struct {
		Tools []RawTool `json:"tools"`
	}
	if err := unmarshalResult(resp.Result, &result); err != nil {
		return nil, &TransportError{Endpoint: target, Phase: "tools/list", Err: err}
	}

	schemas, err := ConvertTools(result.Tools)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("tools extracted", zap.Int("count", len(schemas)))
	return schemas, nil
}

// usesHandshake reports whether the endpoint path follows the SSE
// convention.
func (e *Extractor) usesHandshake() bool {
	u, err := url.Parse(e.Endpoint)
	if err != nil {
		return strings.Contains(e.Endpoint, "/sse")
	}
	return strings.Contains(u.Path, "/sse")
}

// ConvertTools normalizes raw tool records into ToolSchema values.
// Name collisions are deliberately not collapsed here; the generator's
// planning step decides what to do with the derived identifiers.
func ConvertTools(tools []RawTool) ([]schema.ToolSchema, error) {
	schemas := make([]schema.ToolSchema, 0, len(tools))
	for _, t := range tools {
		ts, err := schema.New(t.Name, t.Description, t.InputSchema, t.OutputSchema, t.Annotations)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, ts)
	}
	return schemas, nil
}
