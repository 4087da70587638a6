package api

import (
	"io"
	"net/http"

	"github.com/geoservercloud/geoserver-mcp/internal/mcp"
)

// maxRequestBytes bounds a single JSON-RPC request body. SLD uploads are
// the largest legitimate payload.
const maxRequestBytes = 4 << 20

// mcpHandler serves the MCP JSON-RPC dispatch over HTTP: one request
// per POST body, one response per reply.
type mcpHandler struct {
	server *mcp.Server
}

func (h *mcpHandler) post(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read request body")
		return
	}
	defer r.Body.Close()

	resp := h.server.Dispatch(r.Context(), body)
	if resp == nil {
		// Notification: acknowledged, nothing to return.
		w.WriteHeader(http.StatusAccepted)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
