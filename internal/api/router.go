package api

import (
	"net/http"

	"github.com/geoservercloud/geoserver-mcp/internal/mcp"
	"github.com/geoservercloud/geoserver-mcp/internal/store"
)

// RouterDeps holds the dependencies needed by the HTTP transport router.
type RouterDeps struct {
	Store   store.Store
	MCP     *mcp.Server
	Version string
}

// NewRouter creates an http.Handler exposing the MCP endpoint plus
// health and audit queries.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mh := &mcpHandler{server: deps.MCP}
	mux.HandleFunc("POST /mcp", mh.post)

	ah := &auditHandler{store: deps.Store}
	mux.HandleFunc("GET /api/audit", ah.query)
	mux.HandleFunc("GET /api/audit/stats", ah.stats)

	hh := &healthHandler{store: deps.Store, version: deps.Version}
	mux.HandleFunc("GET /healthz", hh.check)

	var handler http.Handler = mux
	handler = loggingMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}
