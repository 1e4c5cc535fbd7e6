package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
)

// StdioTransport speaks line-delimited JSON-RPC over the stdin/stdout
// of a locally spawned MCP server process.
type StdioTransport struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	reader *bufio.Reader

	// One request in flight at a time; responses are matched by order.
	mu sync.Mutex
}

// NewStdioTransport prepares a transport that will run command with
// args. env entries (KEY=VALUE) are merged over the current process
// environment. Call Start to spawn the process.
func NewStdioTransport(command string, args []string, env []string) *StdioTransport {
	cmd := exec.Command(command, args...)
	cmd.Env = mergeEnv(os.Environ(), env)
	cmd.Stderr = os.Stderr
	return &StdioTransport{cmd: cmd}
}

// Start spawns the server process and wires up the pipes.
func (t *StdioTransport) Start() error {
	stdin, err := t.cmd.StdinPipe()
	if err != nil {
		return &TransportError{Endpoint: t.cmd.Path, Phase: "spawn", Err: err}
	}
	t.stdin = stdin

	stdout, err := t.cmd.StdoutPipe()
	if err != nil {
		return &TransportError{Endpoint: t.cmd.Path, Phase: "spawn", Err: err}
	}
	t.reader = bufio.NewReader(stdout)

	if err := t.cmd.Start(); err != nil {
		return &TransportError{Endpoint: t.cmd.Path, Phase: "spawn", Err: err}
	}
	return nil
}

// Send writes one newline-terminated JSON-RPC request and reads one
// line of response. The read honors ctx: a server that accepts the
// request but never answers fails with the context's error instead of
// blocking forever. After a cancelled read the transport must be
// closed; the abandoned read goroutine exits once Close kills the
// process.
func (t *StdioTransport) Send(ctx context.Context, req *JSONRPCRequest) (*JSONRPCResponse, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	data, err := json.Marshal(req)
	if err != nil {
		return nil, &TransportError{Endpoint: t.cmd.Path, Phase: "request", Err: err}
	}

	if _, err := t.stdin.Write(append(data, '\n')); err != nil {
		return nil, &TransportError{Endpoint: t.cmd.Path, Phase: "write", Err: err}
	}

	type readResult struct {
		line []byte
		err  error
	}
	lines := make(chan readResult, 1)
	go func() {
		line, err := t.reader.ReadBytes('\n')
		lines <- readResult{line: line, err: err}
	}()

	var line []byte
	select {
	case <-ctx.Done():
		return nil, &TransportError{Endpoint: t.cmd.Path, Phase: "read", Err: ctx.Err()}
	case res := <-lines:
		if res.err != nil {
			return nil, &TransportError{Endpoint: t.cmd.Path, Phase: "read", Err: res.err}
		}
		line = res.line
	}

	var resp JSONRPCResponse
	if err := json.Unmarshal(line, &resp); err != nil {
		return nil, &TransportError{Endpoint: t.cmd.Path, Phase: "decode", Err: err}
	}
	return &resp, nil
}

// Close shuts the server process down: stdin closed, process killed
// and reaped.
func (t *StdioTransport) Close() error {
	if t.stdin != nil {
		t.stdin.Close()
	}
	if t.cmd.Process != nil {
		t.cmd.Process.Kill()
	}
	// Reap to avoid a zombie; the kill makes the exit status meaningless.
	_ = t.cmd.Wait()
	return nil
}

// mergeEnv layers override entries on top of base, preserving first-seen
// key order so the child environment is stable.
func mergeEnv(base, overrides []string) []string {
	byKey := make(map[string]string, len(base)+len(overrides))
	order := make([]string, 0, len(base)+len(overrides))

	for _, entry := range append(append([]string{}, base...), overrides...) {
		key, _, found := strings.Cut(entry, "=")
		if !found {
			continue
		}
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = entry
	}

	merged := make([]string, 0, len(order))
	for _, key := range order {
		merged = append(merged, byKey[key])
	}
	return merged
}
