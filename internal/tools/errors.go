package tools

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/geoservercloud/geoserver-mcp/internal/geoserver"
)

// Kind classifies an invocation failure for the calling agent.
type Kind string

const (
	// KindConnection: backend unreachable before any HTTP response.
	KindConnection Kind = "connection_error"
	// KindAuthentication: backend rejected the credentials (401/403).
	KindAuthentication Kind = "authentication_error"
	// KindNotFound: a named entity (tool, workspace, store, layer) is absent.
	KindNotFound Kind = "not_found"
	// KindValidation: argument binding failed before any backend call.
	KindValidation Kind = "validation_error"
	// KindBackend: any other non-success backend status.
	KindBackend Kind = "backend_error"
	// KindUnknownTool: the requested tool name is not registered.
	KindUnknownTool Kind = "unknown_tool"
)

// Error is the classified, caller-facing failure of one invocation.
type Error struct {
	Kind       Kind   `json:"kind"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code,omitempty"` // backend status verbatim, 0 = none
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func unknownToolError(name string) *Error {
	return &Error{Kind: KindUnknownTool, Message: fmt.Sprintf("unknown tool: %s", name)}
}

func validationError(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Classify maps a handler failure into the error taxonomy. Backend
// failures are never retried here; they are surfaced immediately.
func Classify(err error) *Error {
	var te *Error
	if errors.As(err, &te) {
		return te
	}

	var se *geoserver.StatusError
	if errors.As(err, &se) {
		return classifyStatus(se.Status, se.Message)
	}

	var ue *url.Error
	var ne net.Error
	if errors.As(err, &ue) || errors.As(err, &ne) ||
		errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindConnection, Message: err.Error()}
	}

	return &Error{Kind: KindBackend, Message: err.Error()}
}

// classifyStatus maps a non-success backend status into the taxonomy,
// carrying the status code verbatim.
func classifyStatus(status int, content any) *Error {
	msg := messageFor(status, content)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &Error{Kind: KindAuthentication, Message: msg, StatusCode: status}
	case status == http.StatusNotFound || status == http.StatusGone:
		return &Error{Kind: KindNotFound, Message: msg, StatusCode: status}
	default:
		return &Error{Kind: KindBackend, Message: msg, StatusCode: status}
	}
}

func messageFor(status int, content any) string {
	if s, ok := content.(string); ok && s != "" {
		return s
	}
	if content != nil {
		if s := fmt.Sprint(content); s != "" && s != "<nil>" {
			return s
		}
	}
	return http.StatusText(status)
}
