package store

import (
	"encoding/json"
	"time"
)

// Invocation is one recorded tool invocation. Parameters are redacted
// before the record reaches the store.
type Invocation struct {
	ID             string          `json:"id"`
	Timestamp      time.Time       `json:"timestamp"`
	Tool           string          `json:"tool"`
	ParamsRedacted json.RawMessage `json:"params_redacted,omitempty"`
	Status         string          `json:"status"` // "success" or "error"
	ErrorKind      string          `json:"error_kind,omitempty"`
	ErrorMessage   string          `json:"error_message,omitempty"`
	StatusCode     int             `json:"status_code,omitempty"` // backend HTTP status, 0 = none
	LatencyMs      int             `json:"latency_ms"`
	CreatedAt      time.Time       `json:"created_at"`
}

// InvocationFilter narrows invocation queries.
type InvocationFilter struct {
	Tool   *string
	Status *string
	After  *time.Time
	Before *time.Time
	Limit  int
	Offset int
}

// InvocationStats summarizes recorded invocations.
type InvocationStats struct {
	Total        int     `json:"total"`
	Errors       int     `json:"errors"`
	AvgLatencyMs float64 `json:"avg_latency_ms"`
}
