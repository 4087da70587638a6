package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/geoservercloud/geoserver-mcp/internal/config"
	"github.com/geoservercloud/geoserver-mcp/internal/geoserver"
	"github.com/geoservercloud/geoserver-mcp/internal/mcp"
	"github.com/geoservercloud/geoserver-mcp/internal/store"
	"github.com/geoservercloud/geoserver-mcp/internal/tools"
)

type fakeStore struct {
	records []store.Invocation
	pingErr error
}

func (f *fakeStore) InsertInvocation(ctx context.Context, r *store.Invocation) error {
	f.records = append(f.records, *r)
	return nil
}

func (f *fakeStore) QueryInvocations(ctx context.Context, filter store.InvocationFilter) ([]store.Invocation, int, error) {
	out := f.records
	if filter.Tool != nil {
		out = nil
		for _, r := range f.records {
			if r.Tool == *filter.Tool {
				out = append(out, r)
			}
		}
	}
	return out, len(out), nil
}

func (f *fakeStore) GetInvocationStats(ctx context.Context, after, before time.Time) (*store.InvocationStats, error) {
	return &store.InvocationStats{Total: len(f.records)}, nil
}

func (f *fakeStore) Ping(ctx context.Context) error { return f.pingErr }
func (f *fakeStore) Close() error                   { return nil }

func newTestRouter(t *testing.T, fs *fakeStore) http.Handler {
	t.Helper()
	cfg := config.NewCache(config.WithLookup(func(string) string { return "" }))
	d := tools.NewDispatcher(tools.DefaultRegistry(), cfg, func(conn config.Connection) *geoserver.Client {
		return geoserver.NewClient(conn)
	})
	return NewRouter(RouterDeps{
		Store:   fs,
		MCP:     mcp.NewServer(d, "geoserver-mcp", "test"),
		Version: "test",
	})
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t, &fakeStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp healthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Status != "ok" || resp.Version != "test" {
		t.Errorf("response = %+v", resp)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing request id header")
	}
}

func TestRouter_HealthDegraded(t *testing.T) {
	router := newTestRouter(t, &fakeStore{pingErr: errors.New("locked")})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRouter_AuditQuery(t *testing.T) {
	fs := &fakeStore{records: []store.Invocation{
		{ID: "1", Tool: "create_workspace", Status: "success"},
		{ID: "2", Tool: "delete_workspace", Status: "error"},
	}}
	router := newTestRouter(t, fs)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/audit?tool=create_workspace", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Data  []store.Invocation `json:"data"`
		Total int                `json:"total"`
		Limit int                `json:"limit"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Total != 1 || len(resp.Data) != 1 || resp.Data[0].ID != "1" {
		t.Errorf("response = %+v", resp)
	}
	if resp.Limit != 50 {
		t.Errorf("limit = %d", resp.Limit)
	}
}

func TestRouter_AuditStats(t *testing.T) {
	fs := &fakeStore{records: []store.Invocation{{ID: "1"}}}
	router := newTestRouter(t, fs)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/audit/stats", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var stats store.InvocationStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if stats.Total != 1 {
		t.Errorf("total = %d", stats.Total)
	}
}

func TestRouter_MCPToolsList(t *testing.T) {
	router := newTestRouter(t, &fakeStore{})

	body := `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp mcp.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("error = %v", resp.Error)
	}
	var result mcp.ListToolsResult
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if len(result.Tools) != 68 {
		t.Errorf("tools = %d", len(result.Tools))
	}
}

func TestRouter_MCPNotificationAccepted(t *testing.T) {
	router := newTestRouter(t, &fakeStore{})

	body := `{"jsonrpc":"2.0","method":"notifications/initialized"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(body)))
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d", rec.Code)
	}
}
