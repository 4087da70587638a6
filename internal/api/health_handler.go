package api

import (
	"net/http"
	"time"

	"github.com/geoservercloud/geoserver-mcp/internal/store"
)

var startTime = time.Now()

type healthHandler struct {
	store   store.Store
	version string
}

type healthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	UptimeSeconds int    `json:"uptime_seconds"`
}

func (h *healthHandler) check(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:        "degraded",
			Version:       h.version,
			UptimeSeconds: int(time.Since(startTime).Seconds()),
		})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		Version:       h.version,
		UptimeSeconds: int(time.Since(startTime).Seconds()),
	})
}
