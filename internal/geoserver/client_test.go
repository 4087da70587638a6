package geoserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/geoservercloud/geoserver-mcp/internal/config"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(config.Connection{URL: srv.URL, User: "admin", Password: "geoserver"})
	return c, srv
}

func TestClient_BasicAuthAndAcceptHeader(t *testing.T) {
	var gotUser, gotPass string
	var gotAccept string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, _ = r.BasicAuth()
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"workspaces":{}}`)
	}))

	_, status, err := c.GetWorkspaces(context.Background())
	if err != nil {
		t.Fatalf("GetWorkspaces: %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("status = %d", status)
	}
	if gotUser != "admin" || gotPass != "geoserver" {
		t.Errorf("basic auth = %s/%s", gotUser, gotPass)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
}

func TestClient_CreateWorkspacePayload(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody map[string]any
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, "demo")
	}))

	content, status, err := c.CreateWorkspace(context.Background(), "demo", true)
	if err != nil {
		t.Fatalf("CreateWorkspace: %v", err)
	}
	if status != http.StatusCreated {
		t.Errorf("status = %d, want 201", status)
	}
	if content != "demo" {
		t.Errorf("content = %v, want demo", content)
	}
	if gotMethod != http.MethodPost || gotPath != "/rest/workspaces" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	ws, _ := gotBody["workspace"].(map[string]any)
	if ws["name"] != "demo" || ws["isolated"] != true {
		t.Errorf("payload = %v", gotBody)
	}
}

func TestClient_CreateWorkspaceFallsBackToUpdate(t *testing.T) {
	var methods []string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusConflict)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	content, status, err := c.CreateWorkspace(context.Background(), "demo", false)
	if err != nil {
		t.Fatalf("CreateWorkspace: %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200 from PUT", status)
	}
	if content != "Workspace demo updated" {
		t.Errorf("content = %v", content)
	}
	if len(methods) != 2 || methods[0] != http.MethodPost || methods[1] != http.MethodPut {
		t.Errorf("methods = %v, want [POST PUT]", methods)
	}
}

func TestClient_DeleteWorkspaceRecurses(t *testing.T) {
	var gotRecurse string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRecurse = r.URL.Query().Get("recurse")
		w.WriteHeader(http.StatusOK)
	}))

	if _, _, err := c.DeleteWorkspace(context.Background(), "demo"); err != nil {
		t.Fatalf("DeleteWorkspace: %v", err)
	}
	if gotRecurse != "true" {
		t.Errorf("recurse = %q, want true", gotRecurse)
	}
}

func TestClient_TransportErrorSurfaces(t *testing.T) {
	c := NewClient(config.Connection{URL: "http://127.0.0.1:1", User: "a", Password: "b"})
	_, _, err := c.GetWorkspaces(context.Background())
	if err == nil {
		t.Fatal("expected transport error for unreachable backend")
	}
}

func TestClient_NonJSONContentPassesThroughAsString(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		io.WriteString(w, "Workspace 'demo' deleted")
	}))

	content, _, err := c.DeleteWorkspace(context.Background(), "demo")
	if err != nil {
		t.Fatalf("DeleteWorkspace: %v", err)
	}
	if content != "Workspace 'demo' deleted" {
		t.Errorf("content = %v", content)
	}
}

const wmsCapabilitiesDoc = `<?xml version="1.0" encoding="UTF-8"?>
<WMS_Capabilities version="1.3.0">
  <Capability>
    <Layer>
      <Title>demo</Title>
      <Layer><Name>demo:rivers</Name><Title>Rivers</Title></Layer>
      <Layer><Name>demo:lakes</Name><Title>Lakes</Title><Abstract>Lake polygons</Abstract></Layer>
    </Layer>
  </Capability>
</WMS_Capabilities>`

func TestClient_GetWMSLayersParsesCapabilities(t *testing.T) {
	var hits int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.URL.Path != "/demo/ows" {
			t.Errorf("path = %s, want /demo/ows", r.URL.Path)
		}
		if r.URL.Query().Get("request") != "GetCapabilities" {
			t.Errorf("request param = %q", r.URL.Query().Get("request"))
		}
		io.WriteString(w, wmsCapabilitiesDoc)
	}))

	layers, err := c.GetWMSLayers(context.Background(), "demo", "")
	if err != nil {
		t.Fatalf("GetWMSLayers: %v", err)
	}
	if len(layers) != 2 {
		t.Fatalf("got %d layers, want 2", len(layers))
	}
	if layers[0].Name != "demo:rivers" || layers[1].Abstract != "Lake polygons" {
		t.Errorf("layers = %+v", layers)
	}

	// Second call is served from the capabilities cache.
	if _, err := c.GetWMSLayers(context.Background(), "demo", ""); err != nil {
		t.Fatalf("cached GetWMSLayers: %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Errorf("backend hit %d times, want 1 (cache)", n)
	}
}

func TestClient_GetFeatureReturnsGeoJSON(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("typeNames") != "demo:rivers" || q.Get("count") != "10" {
			t.Errorf("query = %v", q)
		}
		io.WriteString(w, `{"type":"FeatureCollection","features":[]}`)
	}))

	content, err := c.GetFeature(context.Background(), "demo", "demo:rivers", "", 10)
	if err != nil {
		t.Fatalf("GetFeature: %v", err)
	}
	fc, ok := content.(map[string]any)
	if !ok || fc["type"] != "FeatureCollection" {
		t.Errorf("content = %v", content)
	}
}

func TestClient_OGCErrorStatusBecomesStatusError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, "no auth")
	}))

	_, err := c.GetFeature(context.Background(), "demo", "demo:rivers", "", 0)
	se, ok := err.(*StatusError)
	if !ok {
		t.Fatalf("err = %T %v, want *StatusError", err, err)
	}
	if se.Status != http.StatusUnauthorized {
		t.Errorf("Status = %d, want 401", se.Status)
	}
}

func TestClient_GetPropertyValue(t *testing.T) {
	const doc = `<?xml version="1.0"?>
<wfs:ValueCollection xmlns:wfs="http://www.opengis.net/wfs/2.0">
  <wfs:member><demo:name xmlns:demo="http://demo">Aare</demo:name></wfs:member>
  <wfs:member><demo:name xmlns:demo="http://demo">Rhone</demo:name></wfs:member>
</wfs:ValueCollection>`
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("valueReference") != "name" {
			t.Errorf("valueReference = %q", r.URL.Query().Get("valueReference"))
		}
		io.WriteString(w, doc)
	}))

	values, err := c.GetPropertyValue(context.Background(), "demo", "demo:rivers", "name")
	if err != nil {
		t.Fatalf("GetPropertyValue: %v", err)
	}
	if len(values) != 2 || values[0] != "Aare" || values[1] != "Rhone" {
		t.Errorf("values = %v", values)
	}
}

func TestClient_CreateGridsetUnsupportedEPSG(t *testing.T) {
	c := NewClient(config.Connection{URL: "http://unused", User: "a", Password: "b"})
	if _, _, err := c.CreateGridset(context.Background(), 9999); err == nil {
		t.Fatal("expected error for unsupported EPSG code")
	}
}
