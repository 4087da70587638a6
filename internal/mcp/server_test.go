package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/geoservercloud/geoserver-mcp/internal/config"
	"github.com/geoservercloud/geoserver-mcp/internal/geoserver"
	"github.com/geoservercloud/geoserver-mcp/internal/tools"
)

func newTestServer(t *testing.T, backend http.Handler) *Server {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	cfg := config.NewCache(config.WithLookup(func(key string) string {
		if key == config.EnvURL {
			return srv.URL
		}
		return ""
	}))
	d := tools.NewDispatcher(tools.DefaultRegistry(), cfg, func(conn config.Connection) *geoserver.Client {
		return geoserver.NewClient(conn)
	})
	return NewServer(d, "geoserver-mcp", "test")
}

// runSession feeds newline-delimited requests through RunConn and
// returns the parsed responses in order.
func runSession(t *testing.T, s *Server, requests ...string) []Response {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(requests, "\n") + "\n")

	if err := s.RunConn(context.Background(), in, &out); err != nil {
		t.Fatalf("RunConn: %v", err)
	}

	var responses []Response
	dec := json.NewDecoder(&out)
	for {
		var resp Response
		if err := dec.Decode(&resp); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode response: %v", err)
		}
		responses = append(responses, resp)
	}
	return responses
}

func TestServer_Initialize(t *testing.T) {
	s := newTestServer(t, http.NotFoundHandler())
	resps := runSession(t, s,
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","clientInfo":{"name":"test","version":"0"}}}`)

	if len(resps) != 1 {
		t.Fatalf("responses = %d", len(resps))
	}
	if resps[0].Error != nil {
		t.Fatalf("error = %v", resps[0].Error)
	}

	var result InitializeResult
	if err := json.Unmarshal(resps[0].Result, &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if result.ProtocolVersion != ProtocolVersion {
		t.Errorf("protocolVersion = %q", result.ProtocolVersion)
	}
	if result.ServerInfo.Name != "geoserver-mcp" {
		t.Errorf("serverInfo.name = %q", result.ServerInfo.Name)
	}
	if result.Capabilities.Tools == nil {
		t.Error("tools capability missing")
	}
}

func TestServer_ToolsList(t *testing.T) {
	s := newTestServer(t, http.NotFoundHandler())
	resps := runSession(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)

	var result ListToolsResult
	if err := json.Unmarshal(resps[0].Result, &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(result.Tools) != 68 {
		t.Errorf("tools = %d, want 68", len(result.Tools))
	}
	for _, tool := range result.Tools {
		if tool.Name == "" {
			t.Fatal("tool with empty name")
		}
		if len(tool.InputSchema) == 0 {
			t.Errorf("tool %s has no inputSchema", tool.Name)
		}
	}
}

func TestServer_ToolsCall(t *testing.T) {
	s := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, "demo")
	}))
	resps := runSession(t, s,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"create_workspace","arguments":{"workspace_name":"demo"}}}`)

	var result CallToolResult
	if err := json.Unmarshal(resps[0].Result, &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if result.IsError {
		t.Fatalf("isError set: %s", result.Content[0].Text)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(result.Content[0].Text), &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload["message"] != "demo" || payload["status_code"] != float64(201) {
		t.Errorf("payload = %v", payload)
	}
}

func TestServer_ToolsCallError(t *testing.T) {
	s := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	resps := runSession(t, s,
		`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"get_workspace","arguments":{"workspace_name":"demo"}}}`)

	var result CallToolResult
	if err := json.Unmarshal(resps[0].Result, &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected isError")
	}

	var body struct {
		Error struct {
			Kind       string `json:"kind"`
			StatusCode int    `json:"status_code"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(result.Content[0].Text), &body); err != nil {
		t.Fatalf("unmarshal error body: %v", err)
	}
	if body.Error.Kind != "not_found" || body.Error.StatusCode != 404 {
		t.Errorf("error = %+v", body.Error)
	}
}

func TestServer_UnknownMethodAndParseError(t *testing.T) {
	s := newTestServer(t, http.NotFoundHandler())
	resps := runSession(t, s,
		`{"jsonrpc":"2.0","id":5,"method":"resources/list"}`,
		`{nope`)

	if len(resps) != 2 {
		t.Fatalf("responses = %d", len(resps))
	}
	if resps[0].Error == nil || resps[0].Error.Code != CodeMethodNotFound {
		t.Errorf("first error = %v", resps[0].Error)
	}
	if resps[1].Error == nil || resps[1].Error.Code != CodeParseError {
		t.Errorf("second error = %v", resps[1].Error)
	}
}

func TestServer_NotificationsProduceNoResponse(t *testing.T) {
	s := newTestServer(t, http.NotFoundHandler())
	resps := runSession(t, s,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":6,"method":"ping"}`)

	if len(resps) != 1 {
		t.Fatalf("responses = %d", len(resps))
	}
	var id int
	if err := json.Unmarshal(resps[0].ID, &id); err != nil || id != 6 {
		t.Errorf("id = %s", resps[0].ID)
	}
}
