package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/geoservercloud/geoserver-mcp/internal/tools"
)

// ProtocolVersion is the MCP protocol revision this server speaks.
const ProtocolVersion = "2024-11-05"

// Server speaks MCP over a newline-delimited JSON-RPC stream and routes
// tools/call requests through the dispatcher.
type Server struct {
	dispatcher *tools.Dispatcher
	info       ServerInfo
	logger     *slog.Logger
	mu         sync.Mutex // protects writes to the response stream
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithServerLogger sets the protocol logger.
func WithServerLogger(l *slog.Logger) ServerOption {
	return func(s *Server) { s.logger = l }
}

// NewServer creates an MCP server over a dispatcher.
func NewServer(d *tools.Dispatcher, name, version string, opts ...ServerOption) *Server {
	s := &Server{
		dispatcher: d,
		info:       ServerInfo{Name: name, Version: version},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunStdio runs the server over stdin/stdout.
func (s *Server) RunStdio(ctx context.Context) error {
	return s.run(ctx, os.Stdin, os.Stdout)
}

// RunConn runs the server over an arbitrary reader/writer pair.
func (s *Server) RunConn(ctx context.Context, r io.Reader, w io.Writer) error {
	return s.run(ctx, r, w)
}

func (s *Server) run(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		resp := s.Dispatch(ctx, line)
		if resp == nil {
			continue // notification, no response needed
		}

		if err := s.writeResponse(w, resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
	return scanner.Err()
}

// Dispatch handles one raw JSON-RPC message and returns the response,
// or nil for notifications. The HTTP transport calls this directly.
func (s *Server) Dispatch(ctx context.Context, line []byte) *Response {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return &Response{
			JSONRPC: "2.0",
			Error: &RPCError{
				Code:    CodeParseError,
				Message: "invalid JSON: " + err.Error(),
			},
		}
	}

	// Notifications have no ID; don't send a response.
	if req.ID == nil {
		s.handleNotification(req)
		return nil
	}

	var result json.RawMessage
	var rpcErr *RPCError

	switch req.Method {
	case "initialize":
		result, rpcErr = s.handleInitialize(req.Params)
	case "ping":
		result, _ = json.Marshal(map[string]any{})
	case "tools/list":
		result, rpcErr = s.handleToolsList()
	case "tools/call":
		result, rpcErr = s.handleToolsCall(ctx, req.Params)
	default:
		rpcErr = &RPCError{
			Code:    CodeMethodNotFound,
			Message: fmt.Sprintf("unknown method: %s", req.Method),
		}
	}

	resp := &Response{JSONRPC: "2.0", ID: req.ID}
	if rpcErr != nil {
		resp.Error = rpcErr
	} else {
		resp.Result = result
	}
	return resp
}

func (s *Server) handleNotification(req Request) {
	switch req.Method {
	case "notifications/initialized":
		s.logger.Info("client initialized")
	default:
		s.logger.Debug("unhandled notification", "method", req.Method)
	}
}

func (s *Server) handleInitialize(params json.RawMessage) (json.RawMessage, *RPCError) {
	var p InitializeParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, &RPCError{Code: CodeInvalidParams, Message: err.Error()}
		}
	}

	s.logger.Info("initialize",
		"client", p.ClientInfo.Name,
		"client_version", p.ClientInfo.Version)

	result := InitializeResult{
		ProtocolVersion: ProtocolVersion,
		Capabilities: ServerCapability{
			Tools: &ToolCapability{ListChanged: false},
		},
		ServerInfo: s.info,
	}
	return marshalResult(result)
}

func (s *Server) handleToolsList() (json.RawMessage, *RPCError) {
	infos := s.dispatcher.Registry().List()
	result := ListToolsResult{Tools: make([]Tool, len(infos))}
	for i, info := range infos {
		result.Tools[i] = Tool{
			Name:        info.Name,
			Description: info.Description,
			InputSchema: info.InputSchema,
		}
	}
	return marshalResult(result)
}

func (s *Server) handleToolsCall(ctx context.Context, params json.RawMessage) (json.RawMessage, *RPCError) {
	var call CallToolRequest
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, &RPCError{Code: CodeInvalidParams, Message: err.Error()}
	}
	if call.Name == "" {
		return nil, &RPCError{Code: CodeInvalidParams, Message: "missing tool name"}
	}

	outcome := s.dispatcher.Invoke(ctx, call.Name, call.Arguments)

	var body any
	result := CallToolResult{}
	if outcome.Err != nil {
		result.IsError = true
		body = map[string]any{"error": outcome.Err}
	} else {
		body = outcome.Payload
	}

	text, err := json.Marshal(body)
	if err != nil {
		return nil, &RPCError{Code: CodeInternalError, Message: err.Error()}
	}
	result.Content = []ToolContent{{Type: "text", Text: string(text)}}
	return marshalResult(result)
}

func marshalResult(v any) (json.RawMessage, *RPCError) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, &RPCError{Code: CodeInternalError, Message: err.Error()}
	}
	return data, nil
}

func (s *Server) writeResponse(w io.Writer, resp *Response) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
